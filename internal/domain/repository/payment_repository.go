package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors for payment lookups.
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrGatewayNotFound = errors.New("payment gateway not found")
)

// PaymentDetail pairs a payment with its gateway name and order state.
type PaymentDetail struct {
	Payment     *entity.Payment `json:"payment"`
	GatewayName string          `json:"gateway_name"`
	OrderStatus string          `json:"order_status"`
}

// PaymentRepository manages payments and the gateway catalog.
type PaymentRepository interface {
	// CreatePayment persists a new payment.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByOrder retrieves the payment registered for an order, if any.
	FindPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	// FindPaymentDetailByOrder retrieves the payment of an order with its
	// gateway name and the order state.
	FindPaymentDetailByOrder(ctx context.Context, orderID uuid.UUID) (*PaymentDetail, error)

	// FindPaymentDetailsByCustomer retrieves the customer's payments with
	// their gateway names, newest first.
	FindPaymentDetailsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*PaymentDetail, error)

	// FindGatewayByID retrieves an active payment gateway.
	FindGatewayByID(ctx context.Context, id uuid.UUID) (*entity.PaymentGateway, error)

	// FindGateways retrieves the active payment gateways.
	FindGateways(ctx context.Context) ([]*entity.PaymentGateway, error)
}
