package cart

import "time"

// Item is one product reference stored in a user's cart.
type Item struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"usuario_id"`
	Paquete string    `json:"paquete"`
	AddedAt time.Time `json:"fecha"`
}

// AddRequest is the body of POST /agregar_carrito. Paquete is opaque: a
// JSON string is stored unquoted, any other JSON value as its raw text.
type AddRequest struct {
	Paquete any `json:"paquete"`
}

// AddResponse is the reply to POST /agregar_carrito.
type AddResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SessionStatus is the reply to GET /verificar_sesion.
type SessionStatus struct {
	LoggedIn bool `json:"logged_in"`
}

// Publisher receives cart events for live admin feeds.
type Publisher interface {
	Publish(eventType string, payload any)
}
