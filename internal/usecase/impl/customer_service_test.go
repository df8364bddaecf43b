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

type customerServiceFixtures struct {
	service          usecase.CustomerUsecase
	accountRepo      *MockAccountRepository
	customerRepo     *MockCustomerRepository
	addressRepo      *MockAddressRepository
	membershipRepo   *MockMembershipRepository
	notificationRepo *MockNotificationRepository
	storage          *MockFileStorage
}

func createTestCustomerService() customerServiceFixtures {
	accountRepo := new(MockAccountRepository)
	customerRepo := new(MockCustomerRepository)
	addressRepo := new(MockAddressRepository)
	membershipRepo := new(MockMembershipRepository)
	notificationRepo := new(MockNotificationRepository)
	storage := new(MockFileStorage)

	txManager := &passthroughTxManager{factory: &stubRepositoryFactory{
		addresses: addressRepo,
	}}

	service := NewCustomerService(
		txManager, accountRepo, customerRepo, addressRepo,
		membershipRepo, notificationRepo, storage, newDiscardLogger(),
	)

	return customerServiceFixtures{
		service:          service,
		accountRepo:      accountRepo,
		customerRepo:     customerRepo,
		addressRepo:      addressRepo,
		membershipRepo:   membershipRepo,
		notificationRepo: notificationRepo,
		storage:          storage,
	}
}

func TestCustomerService_GetProfile_WithPlan(t *testing.T) {
	fx := createTestCustomerService()
	ctx := context.Background()

	accountID := uuid.New()
	planID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID, MembershipPlanID: &planID}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.accountRepo.On("FindAccountByID", ctx, accountID).
		Return(&entity.Account{ID: accountID, Email: "paul@example.com"}, nil)
	fx.membershipRepo.On("FindPlanByID", ctx, planID).
		Return(&entity.MembershipPlan{ID: planID, Name: "Premium"}, nil)

	output, err := fx.service.GetProfile(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "paul@example.com", output.Account.Email)
	require.NotNil(t, output.Plan)
	assert.Equal(t, "Premium", output.Plan.Name)
}

func TestCustomerService_GetProfile_CustomerNotFound(t *testing.T) {
	fx := createTestCustomerService()
	ctx := context.Background()
	accountID := uuid.New()

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.GetProfile(ctx, accountID)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_CreateAddress_PrimaryUnmarksOthers(t *testing.T) {
	fx := createTestCustomerService()
	ctx := context.Background()

	accountID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.addressRepo.On("UnmarkPrimaryAddresses", ctx, customer.ID, uuid.Nil).Return(nil)
	fx.addressRepo.On("CreateAddress", ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.CreateAddress(ctx, accountID, usecase.CreateAddressInput{
		Name:      "Casa",
		Reference: "Frente al parque",
		Latitude:  -16.409,
		Longitude: -71.537,
		IsPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, address.IsPrimary)

	fx.addressRepo.AssertExpectations(t)
}

func TestCustomerService_CreateAddress_SecondaryKeepsOthers(t *testing.T) {
	fx := createTestCustomerService()
	ctx := context.Background()

	accountID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.addressRepo.On("CreateAddress", ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	_, err := fx.service.CreateAddress(ctx, accountID, usecase.CreateAddressInput{Name: "Trabajo"})
	require.NoError(t, err)

	fx.addressRepo.AssertNotCalled(t, "UnmarkPrimaryAddresses", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_UpdateAddress_NotOwned(t *testing.T) {
	fx := createTestCustomerService()
	ctx := context.Background()

	accountID := uuid.New()
	addressID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.addressRepo.On("FindAddressByIDAndCustomer", ctx, addressID, customer.ID).
		Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.UpdateAddress(ctx, accountID, addressID, usecase.UpdateAddressInput{})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestCustomerService_DeleteAddress_ReassignsPrimary(t *testing.T) {
	fx := createTestCustomerService()
	ctx := context.Background()

	accountID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	primary := &entity.Address{ID: uuid.New(), CustomerID: customer.ID, IsPrimary: true}
	replacement := &entity.Address{ID: uuid.New(), CustomerID: customer.ID}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.addressRepo.On("FindAddressByIDAndCustomer", ctx, primary.ID, customer.ID).Return(primary, nil)
	fx.addressRepo.On("DeactivateAddress", ctx, primary.ID).Return(nil)
	fx.addressRepo.On("FindNewestActiveAddress", ctx, customer.ID).Return(replacement, nil)
	fx.addressRepo.On("MarkPrimary", ctx, replacement.ID).Return(nil)

	err := fx.service.DeleteAddress(ctx, accountID, primary.ID)
	require.NoError(t, err)

	fx.addressRepo.AssertExpectations(t)
}

func TestCustomerService_DeleteAddress_LastOneLeavesNoPrimary(t *testing.T) {
	fx := createTestCustomerService()
	ctx := context.Background()

	accountID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	primary := &entity.Address{ID: uuid.New(), CustomerID: customer.ID, IsPrimary: true}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.addressRepo.On("FindAddressByIDAndCustomer", ctx, primary.ID, customer.ID).Return(primary, nil)
	fx.addressRepo.On("DeactivateAddress", ctx, primary.ID).Return(nil)
	fx.addressRepo.On("FindNewestActiveAddress", ctx, customer.ID).
		Return(nil, repository.ErrAddressNotFound)

	err := fx.service.DeleteAddress(ctx, accountID, primary.ID)
	require.NoError(t, err)

	fx.addressRepo.AssertNotCalled(t, "MarkPrimary", mock.Anything, mock.Anything)
}

func TestCustomerService_UpdateProfile_PhotoFailureIsNotFatal(t *testing.T) {
	fx := createTestCustomerService()
	ctx := context.Background()

	accountID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID, Name: "Paul", PhotoPath: "clientes/old.png"}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.storage.On("Save", ctx, "clientes", mock.AnythingOfType("string"), mock.Anything).
		Return("", assert.AnError)
	fx.customerRepo.On("UpdateCustomer", ctx, customer).Return(nil)

	newName := "Paul C."
	updated, err := fx.service.UpdateProfile(ctx, accountID, usecase.UpdateProfileInput{
		Name:  &newName,
		Photo: &usecase.FileUpload{Filename: "foto.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Paul C.", updated.Name)
	assert.Equal(t, "clientes/old.png", updated.PhotoPath)
}
