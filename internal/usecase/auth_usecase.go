package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the issued token together with the authenticated identity.
type AuthOutput struct {
	AccessToken string           `json:"access_token"`
	Account     *entity.Account  `json:"account"`
	Customer    *entity.Customer `json:"customer,omitempty"`
	Roles       []string         `json:"roles"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates the account, assigns the customer role and creates the
	// customer profile in one transaction.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and issues an access token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
