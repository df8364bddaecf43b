package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/domain/service"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const proofUploadsDir = "comprobantes"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	storage      service.FileStorage
	logger       *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	txManager repository.TransactionManager,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		txManager:    txManager,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		storage:      storage,
		logger:       logger,
	}
}

func (srv *paymentService) findOwnedOrder(ctx context.Context, accountID, orderID uuid.UUID) (*entity.Order, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	order, err := srv.orderRepo.FindOrderByIDAndCustomer(ctx, orderID, customer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// RegisterPayment records the payment of an order, storing the proof under a
// timestamped name, and moves the order to preparation.
func (srv *paymentService) RegisterPayment(ctx context.Context, accountID uuid.UUID, input usecase.RegisterPaymentInput) (*entity.Payment, error) {
	order, err := srv.findOwnedOrder(ctx, accountID, input.OrderID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.paymentRepo.FindPaymentByOrder(ctx, order.ID); err == nil {
		return nil, domainerrors.ErrPaymentAlreadyExists
	} else if !errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, errors.Wrap(err, "failed to check existing payment")
	}

	gateway, err := srv.paymentRepo.FindGatewayByID(ctx, input.GatewayID)
	if err != nil {
		if errors.Is(err, repository.ErrGatewayNotFound) {
			return nil, domainerrors.ErrGatewayNotFound
		}

		return nil, errors.Wrap(err, "failed to find gateway")
	}

	proofPath := ""
	if input.Proof != nil {
		name := fmt.Sprintf("comprobante_%s_%s%s", order.ID, time.Now().Format("20060102150405"), path.Ext(input.Proof.Filename))
		proofPath, err = srv.storage.Save(ctx, proofUploadsDir, name, input.Proof.Content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store proof of payment")
		}
	}

	payment := &entity.Payment{
		OrderID:   order.ID,
		Amount:    order.Total,
		Date:      time.Now(),
		Status:    entity.PaymentStatusPending,
		GatewayID: gateway.ID,
		ProofPath: proofPath,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPaymentRepository().CreatePayment(ctx, payment); err != nil {
			return err
		}

		return repoFactory.NewOrderRepository().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPreparing)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Payment registered", "orderID", order.ID, "gateway", gateway.Name, "amount", payment.Amount)

	return payment, nil
}

func (srv *paymentService) GetPayment(ctx context.Context, accountID, orderID uuid.UUID) (*repository.PaymentDetail, error) {
	order, err := srv.findOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}

	detail, err := srv.paymentRepo.FindPaymentDetailByOrder(ctx, order.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return detail, nil
}

func (srv *paymentService) ListPayments(ctx context.Context, accountID uuid.UUID) ([]*repository.PaymentDetail, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return srv.paymentRepo.FindPaymentDetailsByCustomer(ctx, customer.ID)
}

func (srv *paymentService) ListGateways(ctx context.Context) ([]*entity.PaymentGateway, error) {
	return srv.paymentRepo.FindGateways(ctx)
}
