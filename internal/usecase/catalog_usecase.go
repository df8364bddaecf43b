package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/repository"

	"github.com/google/uuid"
)

// CatalogUsecase defines the interface for browsing the dish catalog.
type CatalogUsecase interface {
	// ListDishes retrieves the published dishes, optionally filtered by
	// category and species.
	ListDishes(ctx context.Context, categoryID, speciesID *uuid.UUID) ([]*repository.DishDetail, error)

	// GetDish retrieves one dish with its category and species names.
	GetDish(ctx context.Context, dishID uuid.UUID) (*repository.DishDetail, error)
}
