package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment states. A payment stays "pendiente" until an operator manually
// verifies the uploaded proof; no automated reconciliation exists.
const (
	PaymentStatusPending = "pendiente"
)

// PaymentGateway is a supported payment method (Yape, Plin, ...).
type PaymentGateway struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RecordState string    `json:"record_state"`
}

// Payment records one payment attempt for an order. One payment per order
// is enforced by an application-level check, not a unique constraint.
type Payment struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	GatewayID uuid.UUID `json:"gateway_id"`
	ProofPath string    `json:"proof_path"` // Stored proof-of-payment file, may be empty
}
