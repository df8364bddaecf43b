// Package repository defines the persistence interfaces the use case layer
// depends on, keeping it free of any concrete database technology.
package repository

import (
	"context"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors for account lookups.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrRoleNotFound    = errors.New("role not found")
)

// AccountRepository manages login accounts and their role assignments.
type AccountRepository interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByEmail retrieves an account by its unique email.
	FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindAccountByID retrieves an account by its id.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// UpdateLastAccess stamps the last successful login time.
	UpdateLastAccess(ctx context.Context, id uuid.UUID, at time.Time) error

	// FindRoleByName retrieves a role by its unique name.
	FindRoleByName(ctx context.Context, name string) (*entity.Role, error)

	// CreateAccountRole links an account to a role.
	CreateAccountRole(ctx context.Context, link *entity.AccountRole) error

	// FindRolesByAccount retrieves all active roles assigned to an account.
	FindRolesByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Role, error)
}
