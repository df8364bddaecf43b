package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when no active address matches the lookup.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository manages customer delivery addresses.
type AddressRepository interface {
	// CreateAddress persists a new address.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an active address by id.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressByIDAndCustomer retrieves an address only when it belongs
	// to the given customer.
	FindAddressByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Address, error)

	// FindAddressesByCustomer retrieves the customer's active addresses,
	// primary first.
	FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)

	// UpdateAddress persists address changes.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// UnmarkPrimaryAddresses clears the primary flag on every address of the
	// customer except the one given (pass uuid.Nil to clear all).
	UnmarkPrimaryAddresses(ctx context.Context, customerID, exceptID uuid.UUID) error

	// DeactivateAddress soft-deletes an address and clears its primary flag.
	DeactivateAddress(ctx context.Context, id uuid.UUID) error

	// FindNewestActiveAddress retrieves the most recently created active
	// address of a customer, used to reassign the primary flag.
	FindNewestActiveAddress(ctx context.Context, customerID uuid.UUID) (*entity.Address, error)

	// MarkPrimary sets the primary flag on one address.
	MarkPrimary(ctx context.Context, id uuid.UUID) error
}
