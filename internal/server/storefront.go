package server

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/audit"
	"github.com/ziadkadry99/wonderchile/internal/auth"
	"github.com/ziadkadry99/wonderchile/internal/cart"
	"github.com/ziadkadry99/wonderchile/internal/catalog"
	"github.com/ziadkadry99/wonderchile/internal/dashboard"
	"github.com/ziadkadry99/wonderchile/internal/ui"
	"github.com/ziadkadry99/wonderchile/internal/web"
)

// Storefront exposes the wired feature stores.
type Storefront struct {
	Users    *auth.Store
	Sessions *auth.Sessions
	Catalog  *catalog.Store
	Cart     *cart.Store
	Audit    *audit.Store
	Hub      *dashboard.Hub
}

// RegisterStorefront wires every feature package onto the router. The
// session middleware runs for all of them; admin-only routes sit behind
// auth.RequireAdmin.
func (s *Server) RegisterStorefront() (*Storefront, error) {
	database := s.db
	sf := &Storefront{
		Users:    auth.NewStore(database),
		Sessions: auth.NewSessions(database, s.cfg.SecretKey, s.cfg.SessionTTL),
		Catalog:  catalog.NewStore(database),
		Cart:     cart.NewStore(database),
		Audit:    audit.NewStore(database),
		Hub:      dashboard.NewHub(),
	}
	s.onShutdown = append(s.onShutdown, sf.Hub.Close)

	pages, err := web.New(web.Deps{
		DB:             database,
		Users:          sf.Users,
		Sessions:       sf.Sessions,
		Catalog:        sf.Catalog,
		Uploads:        catalog.NewUploads(s.cfg.UploadDir, s.cfg.UploadPatterns, s.cfg.MaxUploadBytes),
		Audit:          sf.Audit,
		Publisher:      sf.Hub,
		Gallery:        ui.NewGallery(s.cfg.Gallery),
		Logger:         s.logger.Named("web"),
		SecureCookies:  s.cfg.SecureCookies,
		MaxUploadBytes: s.cfg.MaxUploadBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("building pages: %w", err)
	}

	s.router.Group(func(r chi.Router) {
		r.Use(sf.Sessions.Load)

		pages.RegisterRoutes(r)
		catalog.RegisterRoutes(r, sf.Catalog, sf.Audit, s.logger.Named("catalog"))
		cart.RegisterRoutes(r, cart.NewHandler(sf.Cart, sf.Audit, sf.Hub, s.logger.Named("cart")))

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			audit.RegisterRoutes(r, sf.Audit)
			dashboard.New(database, sf.Hub, s.logger.Named("dashboard")).RegisterRoutes(r)
		})
	})

	return sf, nil
}

// PurgeSessions removes expired sessions every interval until ctx ends.
func (s *Server) PurgeSessions(ctx context.Context, sessions *auth.Sessions, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.PurgeExpired(ctx)
			if err != nil {
				s.logger.Warn("purging sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				s.logger.Info("expired sessions purged", zap.Int64("count", n))
			}
		}
	}
}
