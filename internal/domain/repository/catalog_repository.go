package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// ErrDishNotFound is returned when no dish matches the lookup.
var ErrDishNotFound = errors.New("dish not found")

// DishDetail pairs a dish with its resolved category and species names.
type DishDetail struct {
	Dish         *entity.Dish `json:"dish"`
	CategoryName string       `json:"category_name"`
	SpeciesName  string       `json:"species_name"`
}

// CatalogFilter narrows catalog listings.
type CatalogFilter struct {
	CategoryID *uuid.UUID
	SpeciesID  *uuid.UUID
}

// CatalogRepository manages the dish catalog and per-pet dish links.
type CatalogRepository interface {
	// FindPublishedDishes retrieves active, published dishes with their
	// category and species names, optionally filtered.
	FindPublishedDishes(ctx context.Context, filter CatalogFilter) ([]*DishDetail, error)

	// FindDishByID retrieves a dish by id regardless of publication state.
	FindDishByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)

	// FindDishDetailByID retrieves a dish with its category and species names.
	FindDishDetailByID(ctx context.Context, id uuid.UUID) (*DishDetail, error)

	// SearchActiveDishesByName retrieves active dishes whose name matches the
	// query, case-insensitively, up to limit rows.
	SearchActiveDishesByName(ctx context.Context, query string, limit int) ([]*DishDetail, error)

	// CreateDish persists a new dish.
	CreateDish(ctx context.Context, dish *entity.Dish) error

	// CreatePersonalDish links a custom dish to the pet it was created for.
	CreatePersonalDish(ctx context.Context, link *entity.PersonalDish) error

	// FindPersonalDishesByPet retrieves the custom dishes assigned to a pet.
	FindPersonalDishesByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Dish, error)
}
