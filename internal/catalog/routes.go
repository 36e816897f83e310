package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/audit"
)

// RegisterRoutes mounts the public catalog endpoints: the JSON trip listing
// and the contact form.
func RegisterRoutes(r chi.Router, store *Store, auditStore *audit.Store, logger *zap.Logger) {
	r.Get("/api/viajes", handleListTrips(store))
	r.Get("/api/promociones", handleListPromotions(store))
	r.Post("/contacto", handleContact(store, auditStore, logger))
}

func handleListTrips(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripType := TripType(r.URL.Query().Get("tipo"))
		switch tripType {
		case "", TripStandard, TripStudy, TripWomen:
		default:
			http.Error(w, fmt.Sprintf("unknown trip type %q", tripType), http.StatusBadRequest)
			return
		}

		trips, err := store.ListTrips(r.Context(), tripType)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if trips == nil {
			trips = []Trip{}
		}
		writeJSON(w, http.StatusOK, trips)
	}
}

func handleListPromotions(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promos, err := store.ListPromotions(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if promos == nil {
			promos = []Promotion{}
		}
		writeJSON(w, http.StatusOK, promos)
	}
}

// handleContact stores a contact-form submission and sends the visitor back
// to the home page.
func handleContact(store *Store, auditStore *audit.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		nc := NewContact{
			Name:    r.PostForm.Get("nombre"),
			Email:   r.PostForm.Get("email"),
			Message: r.PostForm.Get("mensaje"),
		}

		id, err := store.CreateContact(r.Context(), nc)
		if err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				http.Error(w, "Datos de contacto inválidos", http.StatusBadRequest)
				return
			}
			logger.Error("storing contact", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if auditStore != nil {
			if err := auditStore.Log(r.Context(), audit.Entry{
				Action:  audit.ActionContactReceived,
				Subject: fmt.Sprintf("contacto/%d", id),
				Detail:  nc.Email,
			}); err != nil {
				logger.Warn("audit log failed", zap.Error(err))
			}
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
