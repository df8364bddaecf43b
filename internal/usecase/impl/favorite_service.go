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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	customerRepo repository.CustomerRepository
	catalogRepo  repository.CatalogRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	customerRepo repository.CustomerRepository,
	catalogRepo repository.CatalogRepository,
	favoriteRepo repository.FavoriteRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (srv *favoriteService) findCustomer(ctx context.Context, accountID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// AddFavorite marks a dish as favorite. Adding a dish twice is a no-op.
func (srv *favoriteService) AddFavorite(ctx context.Context, accountID, dishID uuid.UUID) error {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return err
	}

	if _, err := srv.catalogRepo.FindDishByID(ctx, dishID); err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return domainerrors.ErrDishNotFound
		}

		return errors.Wrap(err, "failed to find dish")
	}

	return srv.favoriteRepo.CreateFavorite(ctx, &entity.FavoriteDish{
		CustomerID: customer.ID,
		DishID:     dishID,
		AddedAt:    time.Now(),
	})
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, accountID, dishID uuid.UUID) error {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return err
	}

	favorite, err := srv.favoriteRepo.FindFavorite(ctx, customer.ID, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to find favorite")
	}

	return srv.favoriteRepo.DeleteFavorite(ctx, favorite.ID)
}

func (srv *favoriteService) ListFavorites(ctx context.Context, accountID uuid.UUID) ([]*repository.FavoriteDetail, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return srv.favoriteRepo.FindFavoritesByCustomer(ctx, customer.ID)
}

func (srv *favoriteService) IsFavorite(ctx context.Context, accountID, dishID uuid.UUID) (bool, error) {
	customer, err := srv.findCustomer(ctx, accountID)
	if err != nil {
		return false, err
	}

	if _, err := srv.favoriteRepo.FindFavorite(ctx, customer.ID, dishID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find favorite")
	}

	return true, nil
}
