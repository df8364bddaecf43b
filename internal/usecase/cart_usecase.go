package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/domain/repository"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to add a dish to the cart.
type AddCartItemInput struct {
	DishID   uuid.UUID `json:"dish_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
}

// CartOutput bundles the open cart with its lines.
type CartOutput struct {
	Order *entity.Order                 `json:"order"`
	Items []*repository.OrderItemDetail `json:"items"`
}

// CartUsecase defines the interface for shopping cart operations.
// The cart is an order in the cart state; one is created on demand.
type CartUsecase interface {
	// GetCart retrieves the customer's open cart, creating it when absent.
	GetCart(ctx context.Context, accountID uuid.UUID) (*CartOutput, error)

	// AddItem adds a dish to the cart. Adding a dish already in the cart
	// accumulates the quantity. The total is recomputed from all lines.
	AddItem(ctx context.Context, accountID uuid.UUID, input AddCartItemInput) (*CartOutput, error)

	// UpdateItem replaces the quantity of one cart line. A quantity of zero
	// removes the line.
	UpdateItem(ctx context.Context, accountID, itemID uuid.UUID, quantity int) (*CartOutput, error)

	// RemoveItem removes one line from the cart.
	RemoveItem(ctx context.Context, accountID, itemID uuid.UUID) (*CartOutput, error)

	// ClearCart removes every line from the cart.
	ClearCart(ctx context.Context, accountID uuid.UUID) error
}
