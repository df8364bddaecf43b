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

type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	customerRepo *MockCustomerRepository
	orderRepo    *MockOrderRepository
	addressRepo  *MockAddressRepository
	catalogRepo  *MockCatalogRepository
	specRepo     *MockSpecializedOrderRepository
	qrService    *MockQRCodeService
}

func createTestOrderService() orderServiceFixtures {
	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	addressRepo := new(MockAddressRepository)
	catalogRepo := new(MockCatalogRepository)
	specRepo := new(MockSpecializedOrderRepository)
	qrService := new(MockQRCodeService)

	txManager := &passthroughTxManager{factory: &stubRepositoryFactory{
		orders:  orderRepo,
		catalog: catalogRepo,
	}}

	service := NewOrderService(
		txManager, customerRepo, orderRepo, addressRepo,
		catalogRepo, specRepo, qrService, newDiscardLogger(),
	)

	return orderServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		addressRepo:  addressRepo,
		catalogRepo:  catalogRepo,
		specRepo:     specRepo,
		qrService:    qrService,
	}
}

func (fx orderServiceFixtures) expectCustomer(ctx context.Context, accountID uuid.UUID) *entity.Customer {
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)

	return customer
}

func (fx orderServiceFixtures) expectDetailLoads(ctx context.Context) {
	fx.orderRepo.On("FindItemsByOrder", ctx, mock.AnythingOfType("uuid.UUID")).
		Return([]*repository.OrderItemDetail{}, nil)
	fx.orderRepo.On("FindDeliveryControlByOrder", ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrDeliveryControlNotFound).Maybe()
	fx.specRepo.On("FindSpecializedOrderByOrder", ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrSpecializedOrderNotFound)
}

func TestOrderService_Checkout_EmptyOrder(t *testing.T) {
	fx := createTestOrderService()
	ctx := context.Background()
	accountID := uuid.New()
	fx.expectCustomer(ctx, accountID)

	_, err := fx.service.Checkout(ctx, accountID, usecase.CheckoutInput{AddressID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_Checkout_AddressNotOwned(t *testing.T) {
	fx := createTestOrderService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	addressID := uuid.New()
	fx.addressRepo.On("FindAddressByIDAndCustomer", ctx, addressID, customer.ID).
		Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.Checkout(ctx, accountID, usecase.CheckoutInput{
		AddressID: addressID,
		Items:     []usecase.CheckoutItemInput{{DishID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotOwned)
}

func TestOrderService_Checkout_UsesCatalogPrices(t *testing.T) {
	fx := createTestOrderService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	addressID := uuid.New()
	dishID := uuid.New()

	fx.addressRepo.On("FindAddressByIDAndCustomer", ctx, addressID, customer.ID).
		Return(&entity.Address{ID: addressID, CustomerID: customer.ID}, nil)
	fx.orderRepo.On("CreateOrder", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = uuid.New()
		}).
		Return(nil)
	fx.catalogRepo.On("FindDishByID", ctx, dishID).
		Return(&entity.Dish{ID: dishID, Price: 15.0}, nil)
	fx.orderRepo.On("CreateOrderItem", ctx, mock.MatchedBy(func(item *entity.OrderItem) bool {
		return item.Subtotal == 45.0 && item.Quantity == 3
	})).Return(nil)
	fx.orderRepo.On("UpdateOrder", ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.Total == 45.0 && order.Status == entity.OrderStatusPending
	})).Return(nil)
	fx.orderRepo.On("CreateDeliveryControl", ctx, mock.AnythingOfType("*entity.DeliveryControl")).Return(nil)
	fx.expectDetailLoads(ctx)

	output, err := fx.service.Checkout(ctx, accountID, usecase.CheckoutInput{
		AddressID: addressID,
		Items:     []usecase.CheckoutItemInput{{DishID: dishID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 45.0, output.Order.Total)
	assert.True(t, output.Order.IncludesDish)

	fx.orderRepo.AssertExpectations(t)
}

func TestOrderService_ConfirmReceived_MarksDelivered(t *testing.T) {
	fx := createTestOrderService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	order := &entity.Order{ID: uuid.New(), CustomerID: customer.ID, Status: entity.OrderStatusPreparing}
	control := &entity.DeliveryControl{ID: uuid.New(), OrderID: order.ID}

	fx.orderRepo.On("FindOrderByIDAndCustomer", ctx, order.ID, customer.ID).Return(order, nil)
	fx.orderRepo.On("FindDeliveryControlByOrder", ctx, order.ID).Return(control, nil)
	fx.orderRepo.On("ConfirmDelivery", ctx, control.ID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.orderRepo.On("UpdateOrderStatus", ctx, order.ID, entity.OrderStatusDelivered).Return(nil)
	fx.orderRepo.On("FindItemsByOrder", ctx, order.ID).Return([]*repository.OrderItemDetail{}, nil)
	fx.specRepo.On("FindSpecializedOrderByOrder", ctx, order.ID).
		Return(nil, repository.ErrSpecializedOrderNotFound)

	output, err := fx.service.ConfirmReceived(ctx, accountID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, output.Order.Status)
}

func TestOrderService_ConfirmReceived_RecreatesMissingControl(t *testing.T) {
	fx := createTestOrderService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	order := &entity.Order{ID: uuid.New(), CustomerID: customer.ID, Status: entity.OrderStatusPreparing}

	fx.orderRepo.On("FindOrderByIDAndCustomer", ctx, order.ID, customer.ID).Return(order, nil)
	fx.orderRepo.On("FindDeliveryControlByOrder", ctx, order.ID).
		Return(nil, repository.ErrDeliveryControlNotFound)
	fx.orderRepo.On("CreateDeliveryControl", ctx, mock.MatchedBy(func(control *entity.DeliveryControl) bool {
		return control.Confirmed && control.OrderID == order.ID
	})).Return(nil)
	fx.orderRepo.On("UpdateOrderStatus", ctx, order.ID, entity.OrderStatusDelivered).Return(nil)
	fx.orderRepo.On("FindItemsByOrder", ctx, order.ID).Return([]*repository.OrderItemDetail{}, nil)
	fx.specRepo.On("FindSpecializedOrderByOrder", ctx, order.ID).
		Return(nil, repository.ErrSpecializedOrderNotFound)

	_, err := fx.service.ConfirmReceived(ctx, accountID, order.ID)
	require.NoError(t, err)

	fx.orderRepo.AssertExpectations(t)
}

func TestOrderService_ConfirmReceived_Idempotent(t *testing.T) {
	fx := createTestOrderService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	order := &entity.Order{ID: uuid.New(), CustomerID: customer.ID, Status: entity.OrderStatusDelivered}
	control := &entity.DeliveryControl{ID: uuid.New(), OrderID: order.ID, Confirmed: true}

	fx.orderRepo.On("FindOrderByIDAndCustomer", ctx, order.ID, customer.ID).Return(order, nil)
	fx.orderRepo.On("FindDeliveryControlByOrder", ctx, order.ID).Return(control, nil)
	fx.orderRepo.On("FindItemsByOrder", ctx, order.ID).Return([]*repository.OrderItemDetail{}, nil)
	fx.specRepo.On("FindSpecializedOrderByOrder", ctx, order.ID).
		Return(nil, repository.ErrSpecializedOrderNotFound)

	_, err := fx.service.ConfirmReceived(ctx, accountID, order.ID)
	require.NoError(t, err)

	fx.orderRepo.AssertNotCalled(t, "ConfirmDelivery", mock.Anything, mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_GetOrderQR(t *testing.T) {
	fx := createTestOrderService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	order := &entity.Order{ID: uuid.New(), CustomerID: customer.ID}
	fx.orderRepo.On("FindOrderByIDAndCustomer", ctx, order.ID, customer.ID).Return(order, nil)
	fx.qrService.On("GenerateOrderQR", order.ID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.GetOrderQR(ctx, accountID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_GetOrder_NotOwned(t *testing.T) {
	fx := createTestOrderService()
	ctx := context.Background()
	accountID := uuid.New()
	customer := fx.expectCustomer(ctx, accountID)

	orderID := uuid.New()
	fx.orderRepo.On("FindOrderByIDAndCustomer", ctx, orderID, customer.ID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, accountID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
