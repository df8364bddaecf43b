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

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// FindPublishedDishes retrieves active, published dishes, optionally filtered.
func (repo *catalogRepository) FindPublishedDishes(ctx context.Context, filter repository.CatalogFilter) ([]*repository.DishDetail, error) {
	query := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Species").
		Preload("Tags").
		Where("published = ? AND record_state = ?", true, entity.RecordStateActive)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SpeciesID != nil {
		query = query.Where("species_id = ?", *filter.SpeciesID)
	}

	var dishModels []*model.DishModel
	if err := query.Order("name ASC").Find(&dishModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toDishDetails(dishModels), nil
}

// FindDishByID retrieves a dish by id regardless of publication state.
func (repo *catalogRepository) FindDishByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	var dishM model.DishModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&dishM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toDishDomain(&dishM), nil
}

// FindDishDetailByID retrieves a dish with its category and species names.
func (repo *catalogRepository) FindDishDetailByID(ctx context.Context, id uuid.UUID) (*repository.DishDetail, error) {
	var dishM model.DishModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Species").
		Preload("Tags").
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&dishM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDishNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toDishDetail(&dishM), nil
}

// SearchActiveDishesByName retrieves active dishes whose name matches the query.
func (repo *catalogRepository) SearchActiveDishesByName(ctx context.Context, query string, limit int) ([]*repository.DishDetail, error) {
	if limit <= 0 {
		limit = 10
	}

	var dishModels []*model.DishModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Species").
		Where("name ILIKE ? AND record_state = ?", "%"+query+"%", entity.RecordStateActive).
		Order("name ASC").
		Limit(limit).
		Find(&dishModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toDishDetails(dishModels), nil
}

// CreateDish persists a new dish.
func (repo *catalogRepository) CreateDish(ctx context.Context, dish *entity.Dish) error {
	dishM := fromDishDomain(dish)

	if err := repo.db.WithContext(ctx).Omit("Tags").Create(dishM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid category or species reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dish")
	}

	dish.ID = dishM.ID
	dish.CreatedAt = dishM.CreatedAt
	dish.UpdatedAt = dishM.UpdatedAt

	return nil
}

// CreatePersonalDish links a custom dish to the pet it was created for.
func (repo *catalogRepository) CreatePersonalDish(ctx context.Context, link *entity.PersonalDish) error {
	linkM := &model.PersonalDishModel{
		ID:     link.ID,
		DishID: link.DishID,
		PetID:  link.PetID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid dish or pet reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link personal dish")
	}

	link.ID = linkM.ID

	return nil
}

// FindPersonalDishesByPet retrieves the custom dishes assigned to a pet.
func (repo *catalogRepository) FindPersonalDishesByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Dish, error) {
	var linkModels []*model.PersonalDishModel
	err := repo.db.WithContext(ctx).
		Preload("Dish").
		Where("pet_id = ?", petID).
		Find(&linkModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	dishes := make([]*entity.Dish, 0, len(linkModels))
	for _, linkM := range linkModels {
		if linkM.Dish != nil {
			dishes = append(dishes, toDishDomain(linkM.Dish))
		}
	}

	return dishes, nil
}

func toDishDetails(models []*model.DishModel) []*repository.DishDetail {
	details := make([]*repository.DishDetail, 0, len(models))
	for _, dishM := range models {
		details = append(details, toDishDetail(dishM))
	}

	return details
}

func toDishDetail(m *model.DishModel) *repository.DishDetail {
	detail := &repository.DishDetail{Dish: toDishDomain(m)}
	if m.Category != nil {
		detail.CategoryName = m.Category.Name
	}
	if m.Species != nil {
		detail.SpeciesName = m.Species.Name
	}

	return detail
}

func toDishDomain(m *model.DishModel) *entity.Dish {
	dish := &entity.Dish{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		Ingredients:      m.Ingredients,
		Price:            m.Price,
		CategoryID:       m.CategoryID,
		SpeciesID:        m.SpeciesID,
		ImagePath:        m.ImagePath,
		IsRaw:            m.IsRaw,
		Published:        m.Published,
		NutritionistMade: m.NutritionistMade,
		RecordState:      m.RecordState,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	for _, tagM := range m.Tags {
		dish.Tags = append(dish.Tags, entity.Tag{
			ID:          tagM.ID,
			Name:        tagM.Name,
			RecordState: tagM.RecordState,
		})
	}

	return dish
}

func fromDishDomain(e *entity.Dish) *model.DishModel {
	state := e.RecordState
	if state == "" {
		state = entity.RecordStateActive
	}

	return &model.DishModel{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		Ingredients:      e.Ingredients,
		Price:            e.Price,
		CategoryID:       e.CategoryID,
		SpeciesID:        e.SpeciesID,
		ImagePath:        e.ImagePath,
		IsRaw:            e.IsRaw,
		Published:        e.Published,
		NutritionistMade: e.NutritionistMade,
		RecordState:      state,
	}
}
