package dashboard

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/db"
)

// Dashboard serves the admin live feed and storefront statistics.
type Dashboard struct {
	db     *db.DB
	hub    *Hub
	logger *zap.Logger
}

// New creates a new Dashboard.
func New(database *db.DB, hub *Hub, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{db: database, hub: hub, logger: logger}
}

// Hub returns the event hub the dashboard streams from.
func (d *Dashboard) Hub() *Hub { return d.hub }

// RegisterRoutes mounts all dashboard routes onto the given router. Callers
// are expected to wrap r with an admin guard.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/admin/en-vivo", d.ServeIndex)
	r.Get("/admin/stats", d.handleStats)
	r.Get("/admin/ws", d.handleWebSocket)
}
