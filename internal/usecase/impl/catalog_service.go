package impl

import (
	"context"
	"log/slog"

	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (srv *catalogService) ListDishes(ctx context.Context, categoryID, speciesID *uuid.UUID) ([]*repository.DishDetail, error) {
	return srv.catalogRepo.FindPublishedDishes(ctx, repository.CatalogFilter{
		CategoryID: categoryID,
		SpeciesID:  speciesID,
	})
}

func (srv *catalogService) GetDish(ctx context.Context, dishID uuid.UUID) (*repository.DishDetail, error) {
	detail, err := srv.catalogRepo.FindDishDetailByID(ctx, dishID)
	if err != nil {
		if errors.Is(err, repository.ErrDishNotFound) {
			return nil, domainerrors.ErrDishNotFound
		}

		return nil, errors.Wrap(err, "failed to find dish")
	}

	return detail, nil
}
