// Package web serves the storefront's HTML pages and static assets.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/audit"
	"github.com/ziadkadry99/wonderchile/internal/auth"
	"github.com/ziadkadry99/wonderchile/internal/catalog"
	"github.com/ziadkadry99/wonderchile/internal/db"
	"github.com/ziadkadry99/wonderchile/internal/ui"
)

// Publisher receives admin events for the live feed.
type Publisher interface {
	Publish(eventType string, payload any)
}

// Deps are the collaborators the pages need. Audit and Publisher may be nil.
type Deps struct {
	DB        *db.DB
	Users     *auth.Store
	Sessions  *auth.Sessions
	Catalog   *catalog.Store
	Uploads   *catalog.Uploads
	Audit     *audit.Store
	Publisher Publisher
	Gallery   *ui.Gallery
	Logger    *zap.Logger

	// SecureCookies marks the session cookie Secure (HTTPS deployments).
	SecureCookies bool
	// MaxUploadBytes bounds multipart request bodies.
	MaxUploadBytes int64
}

// Web renders the storefront pages.
type Web struct {
	deps  Deps
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"formatCLP": formatCLP,
}

// New parses the page templates.
func New(deps Deps) (*Web, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Gallery == nil {
		deps.Gallery = ui.NewGallery(nil)
	}

	pages := map[string]string{
		"index":       indexTemplate,
		"login":       loginTemplate,
		"admin":       adminTemplate,
		"admin_trips": adminTripsTemplate,
		"add_trip":    addTripTemplate,
	}
	w := &Web{deps: deps, pages: make(map[string]*template.Template, len(pages))}
	for name, src := range pages {
		tmpl, err := template.New(name).Funcs(funcs).Parse(layoutTemplate)
		if err != nil {
			return nil, fmt.Errorf("parsing layout: %w", err)
		}
		if _, err := tmpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		w.pages[name] = tmpl
	}
	return w, nil
}

// render executes a page into a buffer so template errors never produce a
// half-written response.
func (web *Web) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := web.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		web.deps.Logger.Error("rendering page", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// formatCLP renders a price in Chilean pesos, e.g. 120000 -> "$120.000".
func formatCLP(price float64) string {
	n := int64(math.Round(price))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
