package ui

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// GalleryMountID is the id of the element the gallery fills.
	GalleryMountID = "instagram-photos"

	galleryCaption = "✨ Experiencia inolvidable"
)

// Gallery renders a fixed, ordered list of photo cards.
type Gallery struct {
	photos []string
}

// NewGallery returns a gallery over a copy of photos.
func NewGallery(photos []string) *Gallery {
	return &Gallery{photos: slices.Clone(photos)}
}

// Photos returns the configured photo URLs in render order.
func (g *Gallery) Photos() []string { return slices.Clone(g.photos) }

// Render appends one card per photo to mount, in list order. Rendering twice
// appends the cards twice.
func (g *Gallery) Render(mount *html.Node) {
	for i, url := range g.photos {
		mount.AppendChild(photoCard(url, i+1))
	}
}

// OnLoad renders the gallery into the page's mount point if the page has
// one, and reports whether it did.
func (g *Gallery) OnLoad(doc *Document) bool {
	mount := doc.GetElementByID(GalleryMountID)
	if mount == nil {
		return false
	}
	g.Render(mount)
	return true
}

// HTML returns the rendered cards as an HTML fragment.
func (g *Gallery) HTML() (string, error) {
	mount := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	g.Render(mount)

	var b strings.Builder
	for c := mount.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("rendering gallery: %w", err)
		}
	}
	return b.String(), nil
}

// photoCard builds:
//
//	<div class="card instagram-card">
//	  <img src="URL" alt="Foto Instagram N" loading="lazy">
//	  <div class="card-content"><p>✨ Experiencia inolvidable</p></div>
//	</div>
func photoCard(url string, n int) *html.Node {
	card := element(atom.Div, html.Attribute{Key: "class", Val: "card instagram-card"})
	card.AppendChild(element(atom.Img,
		html.Attribute{Key: "src", Val: url},
		html.Attribute{Key: "alt", Val: fmt.Sprintf("Foto Instagram %d", n)},
		html.Attribute{Key: "loading", Val: "lazy"},
	))

	content := element(atom.Div, html.Attribute{Key: "class", Val: "card-content"})
	p := element(atom.P)
	p.AppendChild(&html.Node{Type: html.TextNode, Data: galleryCaption})
	content.AppendChild(p)
	card.AppendChild(content)
	return card
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
}
