package impl

import (
	"context"
	"strings"
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

type paymentServiceFixtures struct {
	service      usecase.PaymentUsecase
	customerRepo *MockCustomerRepository
	orderRepo    *MockOrderRepository
	paymentRepo  *MockPaymentRepository
	storage      *MockFileStorage
}

func createTestPaymentService() paymentServiceFixtures {
	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	storage := new(MockFileStorage)

	txManager := &passthroughTxManager{factory: &stubRepositoryFactory{
		orders:   orderRepo,
		payments: paymentRepo,
	}}

	service := NewPaymentService(txManager, customerRepo, orderRepo, paymentRepo, storage, newDiscardLogger())

	return paymentServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		storage:      storage,
	}
}

func (fx paymentServiceFixtures) expectOwnedOrder(ctx context.Context, accountID uuid.UUID, total float64) *entity.Order {
	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	order := &entity.Order{ID: uuid.New(), CustomerID: customer.ID, Total: total, Status: entity.OrderStatusPending}

	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.orderRepo.On("FindOrderByIDAndCustomer", ctx, order.ID, customer.ID).Return(order, nil)

	return order
}

func TestPaymentService_RegisterPayment_Success(t *testing.T) {
	fx := createTestPaymentService()
	ctx := context.Background()
	accountID := uuid.New()
	order := fx.expectOwnedOrder(ctx, accountID, 58.0)

	gateway := &entity.PaymentGateway{ID: uuid.New(), Name: "Yape"}

	fx.paymentRepo.On("FindPaymentByOrder", ctx, order.ID).
		Return(nil, repository.ErrPaymentNotFound)
	fx.paymentRepo.On("FindGatewayByID", ctx, gateway.ID).Return(gateway, nil)
	fx.storage.On("Save", ctx, "comprobantes", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "comprobante_"+order.ID.String()+"_") &&
			strings.HasSuffix(name, ".jpg")
	}), mock.Anything).Return("comprobantes/comprobante.jpg", nil)
	fx.paymentRepo.On("CreatePayment", ctx, mock.MatchedBy(func(payment *entity.Payment) bool {
		return payment.Amount == 58.0 &&
			payment.Status == entity.PaymentStatusPending &&
			payment.ProofPath == "comprobantes/comprobante.jpg"
	})).Return(nil)
	fx.orderRepo.On("UpdateOrderStatus", ctx, order.ID, entity.OrderStatusPreparing).Return(nil)

	payment, err := fx.service.RegisterPayment(ctx, accountID, usecase.RegisterPaymentInput{
		OrderID:   order.ID,
		GatewayID: gateway.ID,
		Proof:     &usecase.FileUpload{Filename: "pago.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)

	fx.paymentRepo.AssertExpectations(t)
	fx.orderRepo.AssertExpectations(t)
}

func TestPaymentService_RegisterPayment_WithoutProof(t *testing.T) {
	fx := createTestPaymentService()
	ctx := context.Background()
	accountID := uuid.New()
	order := fx.expectOwnedOrder(ctx, accountID, 20.0)

	gateway := &entity.PaymentGateway{ID: uuid.New(), Name: "Plin"}

	fx.paymentRepo.On("FindPaymentByOrder", ctx, order.ID).
		Return(nil, repository.ErrPaymentNotFound)
	fx.paymentRepo.On("FindGatewayByID", ctx, gateway.ID).Return(gateway, nil)
	fx.paymentRepo.On("CreatePayment", ctx, mock.MatchedBy(func(payment *entity.Payment) bool {
		return payment.ProofPath == ""
	})).Return(nil)
	fx.orderRepo.On("UpdateOrderStatus", ctx, order.ID, entity.OrderStatusPreparing).Return(nil)

	_, err := fx.service.RegisterPayment(ctx, accountID, usecase.RegisterPaymentInput{
		OrderID:   order.ID,
		GatewayID: gateway.ID,
	})
	require.NoError(t, err)

	fx.storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_RegisterPayment_AlreadyPaid(t *testing.T) {
	fx := createTestPaymentService()
	ctx := context.Background()
	accountID := uuid.New()
	order := fx.expectOwnedOrder(ctx, accountID, 20.0)

	fx.paymentRepo.On("FindPaymentByOrder", ctx, order.ID).
		Return(&entity.Payment{ID: uuid.New(), OrderID: order.ID}, nil)

	_, err := fx.service.RegisterPayment(ctx, accountID, usecase.RegisterPaymentInput{
		OrderID:   order.ID,
		GatewayID: uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadyExists)
	fx.paymentRepo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestPaymentService_RegisterPayment_UnknownGateway(t *testing.T) {
	fx := createTestPaymentService()
	ctx := context.Background()
	accountID := uuid.New()
	order := fx.expectOwnedOrder(ctx, accountID, 20.0)

	gatewayID := uuid.New()
	fx.paymentRepo.On("FindPaymentByOrder", ctx, order.ID).
		Return(nil, repository.ErrPaymentNotFound)
	fx.paymentRepo.On("FindGatewayByID", ctx, gatewayID).
		Return(nil, repository.ErrGatewayNotFound)

	_, err := fx.service.RegisterPayment(ctx, accountID, usecase.RegisterPaymentInput{
		OrderID:   order.ID,
		GatewayID: gatewayID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrGatewayNotFound)
}

func TestPaymentService_RegisterPayment_UnknownOrder(t *testing.T) {
	fx := createTestPaymentService()
	ctx := context.Background()
	accountID := uuid.New()

	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	orderID := uuid.New()
	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)
	fx.orderRepo.On("FindOrderByIDAndCustomer", ctx, orderID, customer.ID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.RegisterPayment(ctx, accountID, usecase.RegisterPaymentInput{OrderID: orderID})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_GetPayment_NotFound(t *testing.T) {
	fx := createTestPaymentService()
	ctx := context.Background()
	accountID := uuid.New()
	order := fx.expectOwnedOrder(ctx, accountID, 20.0)

	fx.paymentRepo.On("FindPaymentDetailByOrder", ctx, order.ID).
		Return(nil, repository.ErrPaymentNotFound)

	_, err := fx.service.GetPayment(ctx, accountID, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_ListPayments_ReturnsCustomerHistory(t *testing.T) {
	fx := createTestPaymentService()
	ctx := context.Background()
	accountID := uuid.New()

	customer := &entity.Customer{ID: uuid.New(), AccountID: accountID}
	fx.customerRepo.On("FindCustomerByAccount", ctx, accountID).Return(customer, nil)

	details := []*repository.PaymentDetail{
		{Payment: &entity.Payment{ID: uuid.New()}, GatewayName: "Yape"},
	}
	fx.paymentRepo.On("FindPaymentDetailsByCustomer", ctx, customer.ID).Return(details, nil)

	result, err := fx.service.ListPayments(ctx, accountID)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Yape", result[0].GatewayName)
}
