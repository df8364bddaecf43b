package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	catalogRepo  repository.CatalogRepository
	logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager:    txManager,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
	}
}

func (srv *cartService) findCustomer(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// openCart retrieves the customer's cart order, creating one when missing.
func openCart(ctx context.Context, orderRepo repository.OrderRepository, customerID uuid.UUID) (*entity.Order, error) {
	cart, err := orderRepo.FindCartByCustomer(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = &entity.Order{
		CustomerID:   customerID,
		Date:         time.Now(),
		Status:       entity.OrderStatusCart,
		IncludesDish: true,
	}
	if err := orderRepo.CreateOrder(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (srv *cartService) loadCart(ctx context.Context, customerID uuid.UUID) (*usecase.CartOutput, error) {
	cart, err := openCart(ctx, srv.orderRepo, customerID)
	if err != nil {
		return nil, err
	}

	items, err := srv.orderRepo.FindItemsByOrder(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}

	return &usecase.CartOutput{Order: cart, Items: items}, nil
}

func (srv *cartService) GetCart(ctx context.Context, accountID uuid.UUID) (*usecase.CartOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return srv.loadCart(ctx, customer.ID)
}

// AddItem adds a dish to the cart, accumulating the quantity when the dish is
// already present, then recomputes the total from all lines.
func (srv *cartService) AddItem(ctx context.Context, accountID uuid.UUID, input usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	dish, err := srv.catalogRepo.FindDishByID(ctx, input.DishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		cart, err := openCart(ctx, orderRepo, customer.ID)
		if err != nil {
			return err
		}

		item, err := orderRepo.FindOrderItem(ctx, cart.ID, dish.ID)
		switch {
		case err == nil:
			item.Quantity += input.Quantity
			item.Subtotal = dish.Price * float64(item.Quantity)
			if err := orderRepo.UpdateOrderItem(ctx, item); err != nil {
				return err
			}
		case errors.Is(err, repository.ErrOrderItemNotFound):
			item = &entity.OrderItem{
				OrderID:  cart.ID,
				DishID:   dish.ID,
				Quantity: input.Quantity,
				Subtotal: dish.Price * float64(input.Quantity),
			}
			if err := orderRepo.CreateOrderItem(ctx, item); err != nil {
				return err
			}
		default:
			return errors.Wrap(err, "failed to find cart item")
		}

		return recomputeCartTotal(ctx, orderRepo, cart)
	})
	if err != nil {
		return nil, err
	}

	return srv.loadCart(ctx, customer.ID)
}

func (srv *cartService) UpdateItem(ctx context.Context, accountID, itemID uuid.UUID, quantity int) (*usecase.CartOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		cart, item, err := findCartItem(ctx, orderRepo, customer.ID, itemID)
		if err != nil {
			return err
		}

		if quantity <= 0 {
			if err := orderRepo.DeleteOrderItem(ctx, item.Item.ID); err != nil {
				return err
			}
		} else {
			item.Item.Quantity = quantity
			item.Item.Subtotal = item.Dish.Price * float64(quantity)
			if err := orderRepo.UpdateOrderItem(ctx, item.Item); err != nil {
				return err
			}
		}

		return recomputeCartTotal(ctx, orderRepo, cart)
	})
	if err != nil {
		return nil, err
	}

	return srv.loadCart(ctx, customer.ID)
}

func (srv *cartService) RemoveItem(ctx context.Context, accountID, itemID uuid.UUID) (*usecase.CartOutput, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		cart, item, err := findCartItem(ctx, orderRepo, customer.ID, itemID)
		if err != nil {
			return err
		}

		if err := orderRepo.DeleteOrderItem(ctx, item.Item.ID); err != nil {
			return err
		}

		return recomputeCartTotal(ctx, orderRepo, cart)
	})
	if err != nil {
		return nil, err
	}

	return srv.loadCart(ctx, customer.ID)
}

func (srv *cartService) ClearCart(ctx context.Context, accountID uuid.UUID) error {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		cart, err := orderRepo.FindCartByCustomer(ctx, customer.ID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find cart")
		}

		if err := orderRepo.DeleteItemsByOrder(ctx, cart.ID); err != nil {
			return err
		}

		cart.Total = 0

		return orderRepo.UpdateOrder(ctx, cart)
	})
}

// findCartItem resolves a line of the customer's open cart.
func findCartItem(ctx context.Context, orderRepo repository.OrderRepository, customerID, itemID uuid.UUID) (*entity.Order, *repository.OrderItemDetail, error) {
	cart, err := orderRepo.FindCartByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, nil, domainerrors.ErrOrderNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find cart")
	}

	items, err := orderRepo.FindItemsByOrder(ctx, cart.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load cart items")
	}

	for _, item := range items {
		if item.Item.ID == itemID {
			return cart, item, nil
		}
	}

	return nil, nil, domainerrors.ErrNotFound.WithDetails("el producto no está en el carrito")
}

func recomputeCartTotal(ctx context.Context, orderRepo repository.OrderRepository, cart *entity.Order) error {
	total, err := orderRepo.SumOrderItems(ctx, cart.ID)
	if err != nil {
		return errors.Wrap(err, "failed to recompute total")
	}

	cart.Total = total

	return orderRepo.UpdateOrder(ctx, cart)
}
