package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/repository"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for favorite dish operations.
type FavoriteUsecase interface {
	// AddFavorite marks a dish as favorite. Adding it twice is a no-op.
	AddFavorite(ctx context.Context, accountID, dishID uuid.UUID) error

	// RemoveFavorite removes a dish from the favorites.
	RemoveFavorite(ctx context.Context, accountID, dishID uuid.UUID) error

	// ListFavorites retrieves the customer's favorite dishes, newest first.
	ListFavorites(ctx context.Context, accountID uuid.UUID) ([]*repository.FavoriteDetail, error)

	// IsFavorite reports whether the dish is in the customer's favorites.
	IsFavorite(ctx context.Context, accountID, dishID uuid.UUID) (bool, error)
}
