package impl

import (
	"context"
	"testing"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service        usecase.SubscriptionUsecase
	customerRepo   *MockCustomerRepository
	membershipRepo *MockMembershipRepository
}

func createTestSubscriptionService() subscriptionServiceFixtures {
	customerRepo := new(MockCustomerRepository)
	membershipRepo := new(MockMembershipRepository)

	service := NewSubscriptionService(customerRepo, membershipRepo, newDiscardLogger())

	return subscriptionServiceFixtures{
		service:        service,
		customerRepo:   customerRepo,
		membershipRepo: membershipRepo,
	}
}

func TestSubscriptionService_ListPlans_SplitsBenefits(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()

	fx.membershipRepo.On("FindPlans", ctx).Return([]*entity.MembershipPlan{
		{Name: "Gratuita", Benefits: "Acceso al catálogo,Pedidos estándar"},
		{Name: "Premium", Benefits: ""},
	}, nil)

	plans, err := fx.service.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, []string{"Acceso al catálogo", "Pedidos estándar"}, plans[0].Benefits)
	assert.Empty(t, plans[1].Benefits)
}

func TestSubscriptionService_GetCurrentPlan_FallsBackToFree(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()
	accountID := uuid.New()

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).
		Return(&entity.Customer{ID: uuid.New(), AccountID: accountID}, nil)
	fx.membershipRepo.On("FindPlanByName", ctx, entity.BasicPlanName).
		Return(&entity.MembershipPlan{Name: entity.BasicPlanName, Benefits: "Acceso al catálogo"}, nil)

	plan, err := fx.service.GetCurrentPlan(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, entity.BasicPlanName, plan.Plan.Name)
}

func TestSubscriptionService_Subscribe_Success(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()
	accountID := uuid.New()

	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	plan := &entity.MembershipPlan{ID: uuid.New(), Name: "Premium", Price: 29.90}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.membershipRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)
	fx.customerRepo.On("UpdateMembership", ctx, customer.ID, &plan.ID).Return(nil)

	output, err := fx.service.Subscribe(ctx, accountID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Premium", output.Plan.Name)

	fx.customerRepo.AssertExpectations(t)
}

func TestSubscriptionService_Subscribe_UnknownPlan(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()
	accountID := uuid.New()

	planID := uuid.New()
	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).
		Return(&entity.Customer{ID: uuid.New(), AccountID: accountID}, nil)
	fx.membershipRepo.On("FindPlanByID", ctx, planID).Return(nil, repository.ErrPlanNotFound)

	_, err := fx.service.Subscribe(ctx, accountID, planID)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
	fx.customerRepo.AssertNotCalled(t, "UpdateMembership", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_Cancel_ResetsToFreePlan(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()
	accountID := uuid.New()

	paidID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID, MembershipPlanID: &paidID}
	free := &entity.MembershipPlan{ID: uuid.New(), Name: entity.BasicPlanName}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.membershipRepo.On("FindPlanByName", ctx, entity.BasicPlanName).Return(free, nil)
	fx.customerRepo.On("UpdateMembership", ctx, customer.ID, &free.ID).Return(nil)

	output, err := fx.service.Cancel(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, entity.BasicPlanName, output.Plan.Name)
}

func TestSubscriptionService_Cancel_NoSubscription(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()
	accountID := uuid.New()

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).
		Return(&entity.Customer{ID: uuid.New(), AccountID: accountID}, nil)

	_, err := fx.service.Cancel(ctx, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSubscription)
}

func TestSubscriptionService_Cancel_AlreadyOnFreePlan(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()
	accountID := uuid.New()

	free := &entity.MembershipPlan{ID: uuid.New(), Name: entity.BasicPlanName}
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID, MembershipPlanID: &free.ID}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.membershipRepo.On("FindPlanByName", ctx, entity.BasicPlanName).Return(free, nil)

	_, err := fx.service.Cancel(ctx, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSubscription)
	fx.customerRepo.AssertNotCalled(t, "UpdateMembership", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_GetPlan_NotFound(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()

	planID := uuid.New()
	fx.membershipRepo.On("FindPlanByID", ctx, planID).Return(nil, repository.ErrPlanNotFound)

	_, err := fx.service.GetPlan(ctx, planID)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}

func TestSubscriptionService_GetPlan_SplitsBenefits(t *testing.T) {
	fx := createTestSubscriptionService()
	ctx := context.Background()

	plan := &entity.MembershipPlan{ID: uuid.New(), Name: "Premium", Benefits: "envío gratis, descuentos"}
	fx.membershipRepo.On("FindPlanByID", ctx, plan.ID).Return(plan, nil)

	output, err := fx.service.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"envío gratis", "descuentos"}, output.Benefits)
}
