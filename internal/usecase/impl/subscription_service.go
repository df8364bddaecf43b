package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	customerRepo   repository.CustomerRepository
	membershipRepo repository.MembershipRepository
	logger         *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(
	customerRepo repository.CustomerRepository,
	membershipRepo repository.MembershipRepository,
	logger *slog.Logger,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		customerRepo:   customerRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// planOutput splits the comma-joined benefits column into a list.
func planOutput(plan *entity.MembershipPlan) *usecase.PlanOutput {
	var benefits []string
	for _, benefit := range strings.Split(plan.Benefits, ",") {
		if trimmed := strings.TrimSpace(benefit); trimmed != "" {
			benefits = append(benefits, trimmed)
		}
	}

	return &usecase.PlanOutput{Plan: plan, Benefits: benefits}
}

func (srv *subscriptionService) findCustomer(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

func (srv *subscriptionService) ListPlans(ctx context.Context) ([]*usecase.PlanOutput, error) {
	plans, err := srv.membershipRepo.FindPlans(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load plans")
	}

	outputs := make([]*usecase.PlanOutput, 0, len(plans))
	for _, plan := range plans {
		outputs = append(outputs, planOutput(plan))
	}

	return outputs, nil
}

func (srv *subscriptionService) GetPlan(ctx context.Context, planID uuid.UUID) (*usecase.PlanOutput, error) {
	plan, err := srv.membershipRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	return planOutput(plan), nil
}

// GetCurrentPlan resolves the customer's plan, falling back to the free plan
// when no subscription is recorded.
func (srv *subscriptionService) GetCurrentPlan(ctx context.Context, accountID uuid.UUID) (*usecase.PlanOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if customer.MembershipPlanID != nil {
		plan, err := srv.membershipRepo.FindPlanByID(ctx, *customer.MembershipPlanID)
		if err == nil {
			return planOutput(plan), nil
		}
		if !errors.Is(err, repository.ErrPlanNotFound) {
			return nil, errors.Wrap(err, "failed to find plan")
		}
	}

	free, err := srv.membershipRepo.FindPlanByName(ctx, entity.BasicPlanName)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find free plan")
	}

	return planOutput(free), nil
}

func (srv *subscriptionService) Subscribe(ctx context.Context, accountID, planID uuid.UUID) (*usecase.PlanOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	plan, err := srv.membershipRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	if err := srv.customerRepo.UpdateMembership(ctx, customer.ID, &plan.ID); err != nil {
		return nil, err
	}

	srv.logger.Info("Subscription changed", "customerID", customer.ID, "plan", plan.Name)

	return planOutput(plan), nil
}

// Cancel drops the paid subscription and returns the customer to the free plan.
func (srv *subscriptionService) Cancel(ctx context.Context, accountID uuid.UUID) (*usecase.PlanOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if customer.MembershipPlanID == nil {
		return nil, domainerrors.ErrNoActiveSubscription
	}

	free, err := srv.membershipRepo.FindPlanByName(ctx, entity.BasicPlanName)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find free plan")
	}

	if customer.MembershipPlanID != nil && *customer.MembershipPlanID == free.ID {
		return nil, domainerrors.ErrNoActiveSubscription
	}

	if err := srv.customerRepo.UpdateMembership(ctx, customer.ID, &free.ID); err != nil {
		return nil, err
	}

	srv.logger.Info("Subscription cancelled", "customerID", customer.ID)

	return planOutput(free), nil
}
