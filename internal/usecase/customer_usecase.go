package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the editable customer profile fields.
type UpdateProfileInput struct {
	Name  *string     `json:"name,omitempty" form:"name"`
	Phone *string     `json:"phone,omitempty" form:"phone"`
	Photo *FileUpload `json:"-" form:"-"`
}

// CreateAddressInput defines the data required to register a delivery address.
type CreateAddressInput struct {
	Name      string  `json:"name" validate:"required"`
	Reference string  `json:"reference"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsPrimary bool    `json:"is_primary"`
}

// UpdateAddressInput defines the editable address fields.
type UpdateAddressInput struct {
	Name      *string  `json:"name,omitempty"`
	Reference *string  `json:"reference,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	IsPrimary *bool    `json:"is_primary,omitempty"`
}

// ProfileOutput bundles the account and customer profile.
type ProfileOutput struct {
	Account  *entity.Account        `json:"account"`
	Customer *entity.Customer       `json:"customer"`
	Plan     *entity.MembershipPlan `json:"plan,omitempty"`
}

// CustomerUsecase defines the interface for customer profile operations.
type CustomerUsecase interface {
	// GetProfile retrieves the profile of the authenticated account.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*ProfileOutput, error)

	// UpdateProfile updates name, phone or photo of the customer profile.
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input UpdateProfileInput) (*entity.Customer, error)

	// CreateAddress registers a new delivery address. A new primary address
	// unmarks any previous one.
	CreateAddress(ctx context.Context, accountID uuid.UUID, input CreateAddressInput) (*entity.Address, error)

	// ListAddresses retrieves the customer's active addresses, primary first.
	ListAddresses(ctx context.Context, accountID uuid.UUID) ([]*entity.Address, error)

	// UpdateAddress updates an address owned by the customer.
	UpdateAddress(ctx context.Context, accountID, addressID uuid.UUID, input UpdateAddressInput) (*entity.Address, error)

	// DeleteAddress soft-deletes an address. When the primary address is
	// removed, the newest remaining address becomes primary.
	DeleteAddress(ctx context.Context, accountID, addressID uuid.UUID) error

	// ListNotifications retrieves the customer's notifications, newest first.
	ListNotifications(ctx context.Context, accountID uuid.UUID) ([]*entity.Notification, error)
}
