package audit

import "time"

// Action describes what was done.
type Action string

const (
	ActionLogin           Action = "login"
	ActionLogout          Action = "logout"
	ActionCartAdd         Action = "cart_add"
	ActionTripCreated     Action = "trip_created"
	ActionTripDeleted     Action = "trip_deleted"
	ActionContactReceived Action = "contact_received"
)

// Entry is a single audit trail record. ActorID is the account email, or
// empty for anonymous visitors.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   string    `json:"actor"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail,omitempty"`
}
