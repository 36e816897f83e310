// Package cartclient drives the storefront's cart endpoints the way the page
// script does: check the session, then add the product, and report the
// outcome to the visitor through exactly one alert.
package cartclient

import "errors"

// Messages shown to the visitor.
const (
	MsgLoginRequired  = "Debes iniciar sesión para agregar productos al carrito"
	MsgAdded          = "¡Producto agregado al carrito!"
	MsgRejectedPrefix = "Error al agregar al carrito: "
	MsgRequestFailed  = "Error al procesar la solicitud"
)

// LoginPath is where anonymous visitors are sent.
const LoginPath = "/login"

// Endpoint paths.
const (
	SessionPath = "/verificar_sesion"
	AddPath     = "/agregar_carrito"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMalformed        = errors.New("malformed response")
	ErrLoginFailed      = errors.New("login failed")
)

// Notifier shows a message to the visitor.
type Notifier interface {
	Alert(message string)
}

// Navigator moves the visitor to another page.
type Navigator interface {
	Navigate(path string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Alert(message string) { f(message) }

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Outcome classifies how an AddToCart call ended.
type Outcome int

const (
	// OutcomeFailed means a request or response failed; the generic message was shown.
	OutcomeFailed Outcome = iota
	// OutcomeLoginRequired means the visitor was anonymous and sent to the login page.
	OutcomeLoginRequired
	// OutcomeAdded means the server stored the product.
	OutcomeAdded
	// OutcomeRejected means the server answered success=false.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoginRequired:
		return "login_required"
	case OutcomeAdded:
		return "added"
	case OutcomeRejected:
		return "rejected"
	default:
		return "failed"
	}
}

type sessionResponse struct {
	LoggedIn bool `json:"logged_in"`
}

type addRequest struct {
	Paquete any `json:"paquete"`
}

type addResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
