package cart

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/audit"
	"github.com/ziadkadry99/wonderchile/internal/auth"
)

const (
	msgLoginRequired = "Debes iniciar sesión"
	msgBadRequest    = "Solicitud inválida"
	msgMissingItem   = "Paquete requerido"
	msgAdded         = "Producto agregado"
	msgStoreFailed   = "No se pudo guardar el producto"
)

var validate = validator.New()

type addInput struct {
	Paquete string `validate:"required,max=1000"`
}

// Handler serves the session and cart endpoints used by the storefront script.
// The session middleware must run before these routes.
type Handler struct {
	store     *Store
	audit     *audit.Store
	publisher Publisher
	logger    *zap.Logger
}

// NewHandler creates a cart Handler. auditStore and publisher may be nil.
func NewHandler(store *Store, auditStore *audit.Store, publisher Publisher, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, audit: auditStore, publisher: publisher, logger: logger}
}

// RegisterRoutes mounts the cart endpoints on the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/verificar_sesion", h.handleSessionStatus)
	r.Post("/agregar_carrito", h.handleAdd)
	r.Get("/carrito", h.handleList)
}

func (h *Handler) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	_, ok := auth.UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, SessionStatus{LoggedIn: ok})
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AddResponse{Message: msgLoginRequired})
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AddResponse{Message: msgBadRequest})
		return
	}

	in := addInput{Paquete: paqueteText(req.Paquete)}
	if err := validate.Struct(in); err != nil {
		writeJSON(w, http.StatusBadRequest, AddResponse{Message: msgMissingItem})
		return
	}

	item, err := h.store.Add(r.Context(), user.ID, in.Paquete)
	if err != nil {
		h.logger.Error("adding to cart", zap.Int64("user_id", user.ID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, AddResponse{Message: msgStoreFailed})
		return
	}

	h.logger.Info("cart item added",
		zap.Int64("user_id", user.ID),
		zap.String("paquete", item.Paquete),
	)
	if h.audit != nil {
		if err := h.audit.Log(r.Context(), audit.Entry{
			ActorID: user.Email,
			Action:  audit.ActionCartAdd,
			Subject: item.Paquete,
			Detail:  fmt.Sprintf("item=%d", item.ID),
		}); err != nil {
			h.logger.Warn("audit log failed", zap.Error(err))
		}
	}
	if h.publisher != nil {
		h.publisher.Publish("cart_add", map[string]any{
			"usuario": user.Email,
			"paquete": item.Paquete,
		})
	}

	writeJSON(w, http.StatusOK, AddResponse{Success: true, Message: msgAdded})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": msgLoginRequired})
		return
	}

	items, err := h.store.List(r.Context(), user.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []Item{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// paqueteText renders a decoded product reference for storage.
func paqueteText(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
