package catalog

import (
	"errors"
	"time"
)

// TripType groups trips into the storefront's sections.
type TripType string

const (
	TripStandard TripType = "viaje"
	TripStudy    TripType = "gira"
	TripWomen    TripType = "mujeres"
)

var ErrNotFound = errors.New("not found")

// Trip is a travel package offered in the storefront.
type Trip struct {
	ID          int64    `json:"id"`
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion"`
	Price       float64  `json:"precio"`
	Image       string   `json:"imagen"`
	Type        TripType `json:"tipo"`
}

// NewTrip is the input to Store.CreateTrip.
type NewTrip struct {
	Title       string   `validate:"required,max=200"`
	Description string   `validate:"max=5000"`
	Price       float64  `validate:"gte=0"`
	Image       string   `validate:"max=500"`
	Type        TripType `validate:"omitempty,oneof=viaje gira mujeres"`
}

// Promotion is a discount campaign shown on the home page.
type Promotion struct {
	ID          int64   `json:"id"`
	Title       string  `json:"titulo"`
	Description string  `json:"descripcion"`
	Discount    float64 `json:"descuento"`
	Image       string  `json:"imagen"`
}

// NewPromotion is the input to Store.CreatePromotion.
type NewPromotion struct {
	Title       string  `validate:"required,max=200"`
	Description string  `validate:"max=2000"`
	Discount    float64 `validate:"gte=0,lte=100"`
	Image       string  `validate:"max=500"`
}

// Contact is a message left through the contact form.
type Contact struct {
	ID      int64     `json:"id"`
	Name    string    `json:"nombre"`
	Email   string    `json:"email"`
	Message string    `json:"mensaje"`
	Date    time.Time `json:"fecha"`
}

// NewContact is the input to Store.CreateContact.
type NewContact struct {
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,max=5000"`
}
