package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/domain/service"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	addressRepo  repository.AddressRepository
	catalogRepo  repository.CatalogRepository
	specRepo     repository.SpecializedOrderRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	addressRepo repository.AddressRepository,
	catalogRepo repository.CatalogRepository,
	specRepo repository.SpecializedOrderRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:    txManager,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		addressRepo:  addressRepo,
		catalogRepo:  catalogRepo,
		specRepo:     specRepo,
		qrService:    qrService,
		logger:       logger,
	}
}

func (srv *orderService) findCustomer(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

func (srv *orderService) findOwnedOrder(ctx context.Context, accountID, orderID uuid.UUID) (*entity.Order, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
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

// Checkout places an order. Line prices always come from the catalog so a
// tampered client cannot set its own totals.
func (srv *orderService) Checkout(ctx context.Context, accountID uuid.UUID, input usecase.CheckoutInput) (*usecase.OrderDetailOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	if _, err := srv.addressRepo.FindAddressByIDAndCustomer(ctx, input.AddressID, customer.ID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotOwned
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	order := &entity.Order{
		CustomerID:   customer.ID,
		AddressID:    &input.AddressID,
		Date:         time.Now(),
		Status:       entity.OrderStatusPending,
		IncludesDish: true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		catalogRepo := repoFactory.NewCatalogRepository()

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return err
		}

		var total float64
		for _, line := range input.Items {
			dish, err := catalogRepo.FindDishByID(ctx, line.DishID)
			if err != nil {
				if errors.Is(err, repository.ErrDishNotFound) {
					return domainerrors.ErrDishNotFound
				}

				return errors.Wrap(err, "failed to find dish")
			}

			subtotal := dish.Price * float64(line.Quantity)
			total += subtotal
			if err := orderRepo.CreateOrderItem(ctx, &entity.OrderItem{
				OrderID:  order.ID,
				DishID:   dish.ID,
				Quantity: line.Quantity,
				Subtotal: subtotal,
			}); err != nil {
				return err
			}
		}

		order.Total = total
		if err := orderRepo.UpdateOrder(ctx, order); err != nil {
			return err
		}

		return orderRepo.CreateDeliveryControl(ctx, &entity.DeliveryControl{OrderID: order.ID})
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order placed", "orderID", order.ID, "customerID", customer.ID, "total", order.Total)

	return srv.loadDetail(ctx, order)
}

func (srv *orderService) ListOrders(ctx context.Context, accountID uuid.UUID) ([]*repository.OrderSummary, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return srv.orderRepo.FindOrdersByCustomer(ctx, customer.ID)
}

func (srv *orderService) GetOrder(ctx context.Context, accountID, orderID uuid.UUID) (*usecase.OrderDetailOutput, error) {
	order, err := srv.findOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}

	return srv.loadDetail(ctx, order)
}

// ConfirmReceived marks the order as delivered. Confirming twice is a no-op
// and a missing delivery control row is recreated on the spot.
func (srv *orderService) ConfirmReceived(ctx context.Context, accountID, orderID uuid.UUID) (*usecase.OrderDetailOutput, error) {
	order, err := srv.findOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		now := time.Now()

		control, err := orderRepo.FindDeliveryControlByOrder(ctx, order.ID)
		switch {
		case err == nil:
			if !control.Confirmed {
				if err := orderRepo.ConfirmDelivery(ctx, control.ID, now); err != nil {
					return err
				}
			}
		case errors.Is(err, repository.ErrDeliveryControlNotFound):
			if err := orderRepo.CreateDeliveryControl(ctx, &entity.DeliveryControl{
				OrderID:     order.ID,
				DeliveredAt: now,
				Confirmed:   true,
			}); err != nil {
				return err
			}
		default:
			return errors.Wrap(err, "failed to find delivery control")
		}

		if order.Status != entity.OrderStatusDelivered {
			order.Status = entity.OrderStatusDelivered

			return orderRepo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusDelivered)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.loadDetail(ctx, order)
}

func (srv *orderService) GetOrderQR(ctx context.Context, accountID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.findOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}

func (srv *orderService) loadDetail(ctx context.Context, order *entity.Order) (*usecase.OrderDetailOutput, error) {
	items, err := srv.orderRepo.FindItemsByOrder(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	control, err := srv.orderRepo.FindDeliveryControlByOrder(ctx, order.ID)
	if err != nil && !errors.Is(err, repository.ErrDeliveryControlNotFound) {
		return nil, errors.Wrap(err, "failed to load delivery control")
	}

	spec, err := srv.specRepo.FindSpecializedOrderByOrder(ctx, order.ID)
	if err != nil && !errors.Is(err, repository.ErrSpecializedOrderNotFound) {
		return nil, errors.Wrap(err, "failed to load specialized request")
	}

	return &usecase.OrderDetailOutput{
		Order:       order,
		Items:       items,
		Control:     control,
		Specialized: spec,
	}, nil
}
