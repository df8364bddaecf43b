package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/domain/repository"

	"github.com/google/uuid"
)

// RegisterPaymentInput defines the data required to register a payment.
type RegisterPaymentInput struct {
	OrderID   uuid.UUID   `json:"order_id" form:"order_id" validate:"required"`
	GatewayID uuid.UUID   `json:"gateway_id" form:"gateway_id" validate:"required"`
	Proof     *FileUpload `json:"-" form:"-"`
}

// PaymentUsecase defines the interface for payment registration.
type PaymentUsecase interface {
	// RegisterPayment records the payment of an order and moves it to the
	// preparing state. An order can be paid at most once.
	RegisterPayment(ctx context.Context, accountID uuid.UUID, input RegisterPaymentInput) (*entity.Payment, error)

	// GetPayment retrieves the payment of an order with its gateway name.
	GetPayment(ctx context.Context, accountID, orderID uuid.UUID) (*repository.PaymentDetail, error)

	// ListPayments retrieves the customer's payments, newest first.
	ListPayments(ctx context.Context, accountID uuid.UUID) ([]*repository.PaymentDetail, error)

	// ListGateways retrieves the active payment gateways.
	ListGateways(ctx context.Context) ([]*entity.PaymentGateway, error)
}
