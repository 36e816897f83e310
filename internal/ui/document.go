// Package ui models the storefront page in memory. A Document wraps a parsed
// HTML tree and dispatches click events, and the menu and gallery types bind
// behaviour to the elements the page template renders.
package ui

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ClickHandler receives the element a click was dispatched to.
type ClickHandler func(target *html.Node)

type listener struct {
	id int
	fn ClickHandler
}

// Document is a parsed page with document-level click listeners. Tree
// mutations are not synchronised and belong to one goroutine; listener
// registration may happen from any goroutine.
type Document struct {
	root *html.Node

	mu        sync.Mutex
	nextID    int
	listeners []listener
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Body returns the <body> element, or nil.
func (d *Document) Body() *html.Node {
	return findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *html.Node {
	return findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "id") == id
	})
}

// QuerySelector returns the first element matching a simple selector:
// a tag name ("nav"), an id ("#nav-menu") or a class (".dropdown").
// Compound selectors are not supported and never match.
func (d *Document) QuerySelector(selector string) *html.Node {
	return QuerySelector(d.root, selector)
}

// QuerySelectorAll returns every element under the root matching selector.
func (d *Document) QuerySelectorAll(selector string) []*html.Node {
	match := compileSelector(selector)
	if match == nil {
		return nil
	}
	var out []*html.Node
	walk(d.root, func(n *html.Node) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// QuerySelector searches the subtree below n, excluding n itself.
func QuerySelector(n *html.Node, selector string) *html.Node {
	match := compileSelector(selector)
	if match == nil || n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func compileSelector(selector string) func(*html.Node) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" || strings.ContainsAny(selector, " >+~[:,") {
		return nil
	}
	switch selector[0] {
	case '#':
		id := selector[1:]
		return func(n *html.Node) bool {
			return n.Type == html.ElementNode && Attr(n, "id") == id
		}
	case '.':
		class := selector[1:]
		return func(n *html.Node) bool {
			return n.Type == html.ElementNode && HasClass(n, class)
		}
	default:
		tag := strings.ToLower(selector)
		return func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == tag
		}
	}
}

// Contains reports whether other is n or one of its descendants.
func Contains(n, other *html.Node) bool {
	if n == nil {
		return false
	}
	for p := other; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// AddClickListener subscribes fn to every click dispatched on the document.
// The returned func removes the subscription and is safe to call twice.
func (d *Document) AddClickListener(fn ClickHandler) (remove func()) {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, fn: fn})
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.listeners = slices.DeleteFunc(d.listeners, func(l listener) bool { return l.id == id })
	}
}

// ListenerCount returns the number of active click subscriptions.
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// Click dispatches a click on target to every document listener, in
// registration order.
func (d *Document) Click(target *html.Node) {
	d.mu.Lock()
	ls := slices.Clone(d.listeners)
	d.mu.Unlock()

	for _, l := range ls {
		l.fn(target)
	}
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning an empty string on error.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Classes returns the element's class list.
func Classes(n *html.Node) []string {
	return strings.Fields(Attr(n, "class"))
}

// HasClass reports whether the element carries class.
func HasClass(n *html.Node, class string) bool {
	return slices.Contains(Classes(n), class)
}

// AddClass adds class if absent.
func AddClass(n *html.Node, class string) {
	if n == nil || HasClass(n, class) {
		return
	}
	SetAttr(n, "class", strings.Join(append(Classes(n), class), " "))
}

// RemoveClass removes every occurrence of class.
func RemoveClass(n *html.Node, class string) {
	if n == nil || !HasClass(n, class) {
		return
	}
	classes := slices.DeleteFunc(Classes(n), func(c string) bool { return c == class })
	SetAttr(n, "class", strings.Join(classes, " "))
}

// ToggleClass flips class and reports whether it is now present.
func ToggleClass(n *html.Node, class string) bool {
	if n == nil {
		return false
	}
	if HasClass(n, class) {
		RemoveClass(n, class)
		return false
	}
	AddClass(n, class)
	return true
}

// TextContent returns the concatenated text below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}

// walk visits n and its descendants depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}
