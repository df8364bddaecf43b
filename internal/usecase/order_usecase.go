package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/domain/repository"

	"github.com/google/uuid"
)

// CheckoutItemInput defines one requested order line.
type CheckoutItemInput struct {
	DishID   uuid.UUID `json:"dish_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
}

// CheckoutInput defines the data required to place an order.
type CheckoutInput struct {
	AddressID uuid.UUID           `json:"address_id" validate:"required"`
	Items     []CheckoutItemInput `json:"items" validate:"min=1,dive"`
}

// OrderDetailOutput bundles an order with its lines and delivery tracking.
type OrderDetailOutput struct {
	Order       *entity.Order                 `json:"order"`
	Items       []*repository.OrderItemDetail `json:"items"`
	Control     *entity.DeliveryControl       `json:"control,omitempty"`
	Specialized *entity.SpecializedOrder      `json:"specialized,omitempty"`
}

// OrderUsecase defines the interface for order placement and tracking.
type OrderUsecase interface {
	// Checkout places an order from the given lines. Prices are always taken
	// from the catalog, never from the client. The order header, its lines and
	// the delivery control row are created in one transaction.
	Checkout(ctx context.Context, accountID uuid.UUID, input CheckoutInput) (*OrderDetailOutput, error)

	// ListOrders retrieves the customer's placed orders, newest first.
	ListOrders(ctx context.Context, accountID uuid.UUID) ([]*repository.OrderSummary, error)

	// GetOrder retrieves one order with its lines and tracking state.
	GetOrder(ctx context.Context, accountID, orderID uuid.UUID) (*OrderDetailOutput, error)

	// ConfirmReceived marks the order as delivered. The operation is
	// idempotent and recreates a missing delivery control row.
	ConfirmReceived(ctx context.Context, accountID, orderID uuid.UUID) (*OrderDetailOutput, error)

	// GetOrderQR renders a QR code PNG identifying the order.
	GetOrderQR(ctx context.Context, accountID, orderID uuid.UUID) ([]byte, error)
}
