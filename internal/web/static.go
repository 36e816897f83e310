package web

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/wonderchile/internal/catalog"
)

// registerStatic serves the bundled script and stylesheet, plus uploaded
// trip images from the upload directory.
func (web *Web) registerStatic(r chi.Router) {
	r.Get("/static/js/script.js", serveAsset("application/javascript; charset=utf-8", scriptJS))
	r.Get("/static/css/style.css", serveAsset("text/css; charset=utf-8", styleCSS))

	if web.deps.Uploads != nil {
		dir := web.deps.Uploads.Dir()
		fs := http.StripPrefix(catalog.UploadURLPrefix, http.FileServer(noListing{http.Dir(dir)}))
		r.Get(catalog.UploadURLPrefix+"*", fs.ServeHTTP)
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}

// noListing hides directory indexes.
type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
