package dashboard

import (
	_ "embed"
	"net/http"
)

//go:embed live.html
var liveHTML []byte

// ServeIndex serves the embedded live-feed page.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(liveHTML)
}
