package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names seeded at startup and carried inside access tokens.
const (
	RoleAdmin        = "admin"
	RoleCustomer     = "customer"
	RoleNutritionist = "nutritionist"
	RoleCourier      = "courier"
)

// Account represents a login identity. Accounts are deactivated,
// never hard-deleted.
type Account struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`          // Unique login email
	Username     string     `json:"username"`       // Display name chosen at registration
	PasswordHash string     `json:"-"`              // bcrypt hash, never serialized
	RecordState  string     `json:"record_state"`   // "A" active, "I" inactive
	LastAccessAt *time.Time `json:"last_access_at"` // Stamped on every successful login
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Role is a named permission group.
type Role struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RecordState string    `json:"record_state"`
}

// AccountRole links an account to one of its roles.
type AccountRole struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	RoleID      uuid.UUID `json:"role_id"`
	RecordState string    `json:"record_state"`
}
