package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order lifecycle states. The persisted values stay in Spanish because the
// clients and the seeded data depend on them.
const (
	OrderStatusCart      = "carrito"
	OrderStatusPending   = "pendiente"
	OrderStatusPreparing = "en_preparacion"
	OrderStatusReviewed  = "atendido"
	OrderStatusObserved  = "observado"
	OrderStatusDelivered = "entregado"
)

// Order is a purchase header. Exactly one order per customer should be in
// the cart state between requests; the total is always server-computed from
// the line items.
type Order struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	AddressID    *uuid.UUID `json:"address_id"`
	Date         time.Time  `json:"date"`
	Total        float64    `json:"total"`
	Status       string     `json:"status"`
	IncludesDish bool       `json:"includes_dish"` // false for specialized diet requests
}

// OrderItem is one dish line inside an order. Subtotal is price at order
// time multiplied by quantity, recomputed whenever the cart changes.
type OrderItem struct {
	ID       uuid.UUID `json:"id"`
	OrderID  uuid.UUID `json:"order_id"`
	DishID   uuid.UUID `json:"dish_id"`
	Quantity int       `json:"quantity"`
	Subtotal float64   `json:"subtotal"`
}

// DeliveryControl tracks the delivery confirmation of one order. The row is
// created with the order and lazily recreated if missing when the customer
// confirms receipt.
type DeliveryControl struct {
	ID          uuid.UUID  `json:"id"`
	OrderID     uuid.UUID  `json:"order_id"`
	DeliveredAt time.Time  `json:"delivered_at"`
	Confirmed   bool       `json:"confirmed"`
	CourierID   *uuid.UUID `json:"courier_id"`
}
