package repository

import (
	"context"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors for order lookups.
var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderItemNotFound       = errors.New("order item not found")
	ErrDeliveryControlNotFound = errors.New("delivery control not found")
)

// OrderItemDetail pairs an order item with its dish.
type OrderItemDetail struct {
	Item *entity.OrderItem `json:"item"`
	Dish *entity.Dish      `json:"dish"`
}

// OrderSummary pairs an order with whether it carries a specialized request.
type OrderSummary struct {
	Order       *entity.Order `json:"order"`
	Specialized bool          `json:"specialized"`
}

// OrderRepository manages orders, their items and delivery tracking.
type OrderRepository interface {
	// CreateOrder persists a new order header.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by id.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByIDAndCustomer retrieves an order only when it belongs to the
	// given customer.
	FindOrderByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Order, error)

	// FindCartByCustomer retrieves the customer's open cart order, if any.
	FindCartByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Order, error)

	// FindOrdersByCustomer retrieves the customer's non-cart orders, newest
	// first, flagging the ones with a specialized request.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderSummary, error)

	// UpdateOrder persists order header changes.
	UpdateOrder(ctx context.Context, order *entity.Order) error

	// UpdateOrderStatus sets the order state.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error

	// CreateOrderItem persists a new order line.
	CreateOrderItem(ctx context.Context, item *entity.OrderItem) error

	// FindOrderItem retrieves the line for one dish within an order, if any.
	FindOrderItem(ctx context.Context, orderID, dishID uuid.UUID) (*entity.OrderItem, error)

	// FindItemsByOrder retrieves the order's lines with their dishes.
	FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*OrderItemDetail, error)

	// UpdateOrderItem persists line changes.
	UpdateOrderItem(ctx context.Context, item *entity.OrderItem) error

	// DeleteOrderItem removes a line from an order.
	DeleteOrderItem(ctx context.Context, id uuid.UUID) error

	// DeleteItemsByOrder removes every line from an order.
	DeleteItemsByOrder(ctx context.Context, orderID uuid.UUID) error

	// SumOrderItems recomputes the order total from its lines.
	SumOrderItems(ctx context.Context, orderID uuid.UUID) (float64, error)

	// CreateDeliveryControl persists a delivery tracking row.
	CreateDeliveryControl(ctx context.Context, control *entity.DeliveryControl) error

	// FindDeliveryControlByOrder retrieves the tracking row of an order.
	FindDeliveryControlByOrder(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryControl, error)

	// ConfirmDelivery marks the tracking row confirmed at the given time.
	ConfirmDelivery(ctx context.Context, id uuid.UUID, at time.Time) error
}
