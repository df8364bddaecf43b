package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanOutput is a membership plan with its benefits split into entries.
type PlanOutput struct {
	Plan     *entity.MembershipPlan `json:"plan"`
	Benefits []string               `json:"benefits"`
}

// SubscriptionUsecase defines the interface for membership plan operations.
type SubscriptionUsecase interface {
	// ListPlans retrieves the active plans, cheapest first.
	ListPlans(ctx context.Context) ([]*PlanOutput, error)

	// GetPlan retrieves one active plan.
	GetPlan(ctx context.Context, planID uuid.UUID) (*PlanOutput, error)

	// GetCurrentPlan retrieves the customer's current plan.
	GetCurrentPlan(ctx context.Context, accountID uuid.UUID) (*PlanOutput, error)

	// Subscribe switches the customer to the given plan.
	Subscribe(ctx context.Context, accountID, planID uuid.UUID) (*PlanOutput, error)

	// Cancel resets the customer to the free plan.
	Cancel(ctx context.Context, accountID uuid.UUID) (*PlanOutput, error)
}
