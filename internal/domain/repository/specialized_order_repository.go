package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// ErrSpecializedOrderNotFound is returned when no specialized request matches
// the lookup.
var ErrSpecializedOrderNotFound = errors.New("specialized order not found")

// SpecializedOrderSummary joins a specialized request with its order, the
// requesting customer and the pet it was made for.
type SpecializedOrderSummary struct {
	Spec        *entity.SpecializedOrder `json:"spec"`
	Order       *entity.Order            `json:"order"`
	Customer    *entity.Customer         `json:"customer"`
	Pet         *entity.Pet              `json:"pet"`
	SpeciesName string                   `json:"species_name"`
}

// SpecializedOrderRepository manages diet requests awaiting nutritionist review.
type SpecializedOrderRepository interface {
	// CreateSpecializedOrder persists a new diet request.
	CreateSpecializedOrder(ctx context.Context, spec *entity.SpecializedOrder) error

	// FindSpecializedOrderByID retrieves an active diet request by id.
	FindSpecializedOrderByID(ctx context.Context, id uuid.UUID) (*entity.SpecializedOrder, error)

	// FindSpecializedOrderByOrder retrieves the diet request attached to an
	// order, if any.
	FindSpecializedOrderByOrder(ctx context.Context, orderID uuid.UUID) (*entity.SpecializedOrder, error)

	// FindSummaryByID retrieves a diet request with its order, customer and pet.
	FindSummaryByID(ctx context.Context, id uuid.UUID) (*SpecializedOrderSummary, error)

	// FindPendingSummaries retrieves the requests whose orders still await
	// review, oldest first.
	FindPendingSummaries(ctx context.Context) ([]*SpecializedOrderSummary, error)

	// FindSummariesByCustomer retrieves the customer's diet requests with
	// their orders and pets, newest first.
	FindSummariesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*SpecializedOrderSummary, error)

	// CountActiveByPet counts the pet's diet requests attached to orders that
	// are not yet delivered.
	CountActiveByPet(ctx context.Context, petID uuid.UUID) (int64, error)

	// UpdateSpecializedOrder persists diet request changes.
	UpdateSpecializedOrder(ctx context.Context, spec *entity.SpecializedOrder) error
}
