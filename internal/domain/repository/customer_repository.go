package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when no active customer matches the lookup.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository manages customer profiles.
type CustomerRepository interface {
	// CreateCustomer persists a new customer profile.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves an active customer by id.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByAccount retrieves the customer profile owned by an account.
	FindCustomerByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error)

	// UpdateCustomer persists profile changes (name, phone, photo).
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error

	// UpdateMembership sets or clears the customer's denormalized plan reference.
	UpdateMembership(ctx context.Context, customerID uuid.UUID, planID *uuid.UUID) error
}
