package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the profile owned by one account. The membership reference is
// a denormalized foreign key: a customer holds at most one plan at a time
// and no history is retained.
type Customer struct {
	ID               uuid.UUID  `json:"id"`
	AccountID        uuid.UUID  `json:"account_id"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	PhotoPath        string     `json:"photo_path"`         // Relative path under the static root
	MembershipPlanID *uuid.UUID `json:"membership_plan_id"` // Current plan, nil when none
	RecordState      string     `json:"record_state"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Address belongs to one customer. At most one address per customer is
// primary; uniqueness is maintained by an unmark-then-mark sequence.
type Address struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	Reference   string    `json:"reference"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsPrimary   bool      `json:"is_primary"`
	RecordState string    `json:"record_state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Notification is a message shown to a customer in the client app.
// ReferenceID is an opaque id the client uses to deep-link.
type Notification struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Date        time.Time `json:"date"`
	Read        bool      `json:"read"`
	Type        string    `json:"type"`
	ReferenceID string    `json:"reference_id"`
}

// Notification type tags understood by the client.
const (
	NotificationTypeDietReady = "DIETA_LISTA"
)
