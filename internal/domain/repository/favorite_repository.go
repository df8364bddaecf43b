package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when the dish is not in the customer's
// favorites.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteDetail pairs a favorite with the dish it points to.
type FavoriteDetail struct {
	Favorite     *entity.FavoriteDish `json:"favorite"`
	Dish         *entity.Dish         `json:"dish"`
	CategoryName string               `json:"category_name"`
	SpeciesName  string               `json:"species_name"`
	TagNames     []string             `json:"tag_names"`
}

// FavoriteRepository manages the customer's favorite dishes.
type FavoriteRepository interface {
	// CreateFavorite persists a favorite link.
	CreateFavorite(ctx context.Context, favorite *entity.FavoriteDish) error

	// FindFavorite retrieves the link between a customer and a dish, if any.
	FindFavorite(ctx context.Context, customerID, dishID uuid.UUID) (*entity.FavoriteDish, error)

	// FindFavoritesByCustomer retrieves the customer's favorites with their
	// dishes, newest first.
	FindFavoritesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*FavoriteDetail, error)

	// DeleteFavorite removes a favorite link.
	DeleteFavorite(ctx context.Context, id uuid.UUID) error
}
