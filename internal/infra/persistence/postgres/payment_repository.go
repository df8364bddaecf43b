package postgres

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// CreatePayment persists a new payment.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		ID:        payment.ID,
		OrderID:   payment.OrderID,
		Amount:    payment.Amount,
		Date:      payment.Date,
		Status:    payment.Status,
		GatewayID: payment.GatewayID,
		ProofPath: payment.ProofPath,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPaymentAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid order or gateway reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID

	return nil
}

// FindPaymentByOrder retrieves the payment registered for an order, if any.
func (repo *paymentRepository) FindPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&paymentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPaymentDomain(&paymentM), nil
}

// FindPaymentDetailByOrder retrieves the payment of an order with its gateway
// name and the order state.
func (repo *paymentRepository) FindPaymentDetailByOrder(ctx context.Context, orderID uuid.UUID) (*repository.PaymentDetail, error) {
	var paymentM model.PaymentModel
	err := repo.db.WithContext(ctx).
		Preload("Gateway").
		Preload("Order").
		Where("order_id = ?", orderID).
		First(&paymentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.WithStack(err)
	}

	detail := &repository.PaymentDetail{Payment: toPaymentDomain(&paymentM)}
	if paymentM.Gateway != nil {
		detail.GatewayName = paymentM.Gateway.Name
	}
	if paymentM.Order != nil {
		detail.OrderStatus = paymentM.Order.Status
	}

	return detail, nil
}

// FindPaymentDetailsByCustomer retrieves the customer's payments with their
// gateway names, newest first.
func (repo *paymentRepository) FindPaymentDetailsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*repository.PaymentDetail, error) {
	var paymentModels []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Preload("Gateway").
		Preload("Order").
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("orders.customer_id = ?", customerID).
		Order("payments.date DESC").
		Find(&paymentModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	details := make([]*repository.PaymentDetail, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		detail := &repository.PaymentDetail{Payment: toPaymentDomain(paymentM)}
		if paymentM.Gateway != nil {
			detail.GatewayName = paymentM.Gateway.Name
		}
		if paymentM.Order != nil {
			detail.OrderStatus = paymentM.Order.Status
		}
		details = append(details, detail)
	}

	return details, nil
}

// FindGatewayByID retrieves an active payment gateway.
func (repo *paymentRepository) FindGatewayByID(ctx context.Context, id uuid.UUID) (*entity.PaymentGateway, error) {
	var gatewayM model.PaymentGatewayModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&gatewayM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGatewayNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toGatewayDomain(&gatewayM), nil
}

// FindGateways retrieves the active payment gateways.
func (repo *paymentRepository) FindGateways(ctx context.Context) ([]*entity.PaymentGateway, error) {
	var gatewayModels []*model.PaymentGatewayModel
	err := repo.db.WithContext(ctx).
		Where("record_state = ?", entity.RecordStateActive).
		Order("name ASC").
		Find(&gatewayModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	gateways := make([]*entity.PaymentGateway, 0, len(gatewayModels))
	for _, gatewayM := range gatewayModels {
		gateways = append(gateways, toGatewayDomain(gatewayM))
	}

	return gateways, nil
}

func toPaymentDomain(m *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:        m.ID,
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		Date:      m.Date,
		Status:    m.Status,
		GatewayID: m.GatewayID,
		ProofPath: m.ProofPath,
	}
}

func toGatewayDomain(m *model.PaymentGatewayModel) *entity.PaymentGateway {
	return &entity.PaymentGateway{
		ID:          m.ID,
		Name:        m.Name,
		RecordState: m.RecordState,
	}
}
