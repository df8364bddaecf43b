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

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite persists a favorite link.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.FavoriteDish) error {
	favoriteM := &model.FavoriteDishModel{
		ID:         favorite.ID,
		CustomerID: favorite.CustomerID,
		DishID:     favorite.DishID,
		AddedAt:    favorite.AddedAt,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Adding an already favorited dish is treated as idempotent upstream.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid customer or dish reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	favorite.ID = favoriteM.ID

	return nil
}

// FindFavorite retrieves the link between a customer and a dish, if any.
func (repo *favoriteRepository) FindFavorite(ctx context.Context, customerID, dishID uuid.UUID) (*entity.FavoriteDish, error) {
	var favoriteM model.FavoriteDishModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND dish_id = ?", customerID, dishID).
		First(&favoriteM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindFavoritesByCustomer retrieves the customer's favorites with their dishes, newest first.
func (repo *favoriteRepository) FindFavoritesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*repository.FavoriteDetail, error) {
	var favoriteModels []*model.FavoriteDishModel
	err := repo.db.WithContext(ctx).
		Preload("Dish").
		Preload("Dish.Category").
		Preload("Dish.Species").
		Preload("Dish.Tags").
		Where("customer_id = ?", customerID).
		Order("added_at DESC").
		Find(&favoriteModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	details := make([]*repository.FavoriteDetail, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		detail := &repository.FavoriteDetail{Favorite: toFavoriteDomain(favoriteM)}
		if favoriteM.Dish != nil {
			detail.Dish = toDishDomain(favoriteM.Dish)
			if favoriteM.Dish.Category != nil {
				detail.CategoryName = favoriteM.Dish.Category.Name
			}
			if favoriteM.Dish.Species != nil {
				detail.SpeciesName = favoriteM.Dish.Species.Name
			}
			for _, tagM := range favoriteM.Dish.Tags {
				detail.TagNames = append(detail.TagNames, tagM.Name)
			}
		}
		details = append(details, detail)
	}

	return details, nil
}

// DeleteFavorite removes a favorite link.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FavoriteDishModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func toFavoriteDomain(m *model.FavoriteDishModel) *entity.FavoriteDish {
	return &entity.FavoriteDish{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		DishID:     m.DishID,
		AddedAt:    m.AddedAt,
	}
}
