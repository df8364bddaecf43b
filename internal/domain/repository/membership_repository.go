package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when no active plan matches the lookup.
var ErrPlanNotFound = errors.New("membership plan not found")

// MembershipRepository manages the membership plan catalog.
type MembershipRepository interface {
	// FindPlans retrieves the active plans, cheapest first.
	FindPlans(ctx context.Context) ([]*entity.MembershipPlan, error)

	// FindPlanByID retrieves an active plan by id.
	FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error)

	// FindPlanByName retrieves an active plan by its unique name.
	FindPlanByName(ctx context.Context, name string) (*entity.MembershipPlan, error)
}
