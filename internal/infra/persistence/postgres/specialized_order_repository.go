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

// specializedOrderRepository implements the domain.SpecializedOrderRepository interface using GORM.
type specializedOrderRepository struct {
	db *gorm.DB
}

// NewSpecializedOrderRepository is the constructor for specializedOrderRepository.
func NewSpecializedOrderRepository(db *gorm.DB) repository.SpecializedOrderRepository {
	return &specializedOrderRepository{db: db}
}

// CreateSpecializedOrder persists a new diet request.
func (repo *specializedOrderRepository) CreateSpecializedOrder(ctx context.Context, spec *entity.SpecializedOrder) error {
	specM := fromSpecializedOrderDomain(spec)

	if err := repo.db.WithContext(ctx).Omit("Order", "Pet").Create(specM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order already has a specialized request")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid order or pet reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create specialized order")
	}

	spec.ID = specM.ID

	return nil
}

// FindSpecializedOrderByID retrieves an active diet request by id.
func (repo *specializedOrderRepository) FindSpecializedOrderByID(ctx context.Context, id uuid.UUID) (*entity.SpecializedOrder, error) {
	var specM model.SpecializedOrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&specM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpecializedOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toSpecializedOrderDomain(&specM), nil
}

// FindSpecializedOrderByOrder retrieves the diet request attached to an order, if any.
func (repo *specializedOrderRepository) FindSpecializedOrderByOrder(ctx context.Context, orderID uuid.UUID) (*entity.SpecializedOrder, error) {
	var specM model.SpecializedOrderModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ? AND record_state = ?", orderID, entity.RecordStateActive).
		First(&specM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpecializedOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toSpecializedOrderDomain(&specM), nil
}

// FindSummaryByID retrieves a diet request with its order, customer and pet.
func (repo *specializedOrderRepository) FindSummaryByID(ctx context.Context, id uuid.UUID) (*repository.SpecializedOrderSummary, error) {
	var specM model.SpecializedOrderModel
	err := repo.db.WithContext(ctx).
		Preload("Order").
		Preload("Pet").
		Preload("Pet.Species").
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&specM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpecializedOrderNotFound
		}

		return nil, errors.WithStack(err)
	}

	return repo.buildSummary(ctx, &specM)
}

// FindPendingSummaries retrieves the requests whose orders still await review, oldest first.
func (repo *specializedOrderRepository) FindPendingSummaries(ctx context.Context) ([]*repository.SpecializedOrderSummary, error) {
	var specModels []*model.SpecializedOrderModel
	err := repo.db.WithContext(ctx).
		Preload("Order").
		Preload("Pet").
		Preload("Pet.Species").
		Joins("JOIN orders ON orders.id = specialized_orders.order_id").
		Where("orders.status = ? AND specialized_orders.record_state = ?", entity.OrderStatusPending, entity.RecordStateActive).
		Order("orders.date ASC").
		Find(&specModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	summaries := make([]*repository.SpecializedOrderSummary, 0, len(specModels))
	for _, specM := range specModels {
		summary, err := repo.buildSummary(ctx, specM)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// FindSummariesByCustomer retrieves the customer's diet requests with their orders and pets, newest first.
func (repo *specializedOrderRepository) FindSummariesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*repository.SpecializedOrderSummary, error) {
	var specModels []*model.SpecializedOrderModel
	err := repo.db.WithContext(ctx).
		Preload("Order").
		Preload("Pet").
		Preload("Pet.Species").
		Joins("JOIN orders ON orders.id = specialized_orders.order_id").
		Where("orders.customer_id = ? AND specialized_orders.record_state = ?", customerID, entity.RecordStateActive).
		Order("orders.date DESC").
		Find(&specModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	summaries := make([]*repository.SpecializedOrderSummary, 0, len(specModels))
	for _, specM := range specModels {
		summary, err := repo.buildSummary(ctx, specM)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// CountActiveByPet counts the pet's diet requests attached to orders that are not yet delivered.
func (repo *specializedOrderRepository) CountActiveByPet(ctx context.Context, petID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SpecializedOrderModel{}).
		Joins("JOIN orders ON orders.id = specialized_orders.order_id").
		Where("specialized_orders.pet_id = ? AND specialized_orders.record_state = ? AND orders.status NOT IN ?",
			petID, entity.RecordStateActive, []string{entity.OrderStatusCart, entity.OrderStatusDelivered}).
		Count(&count).Error

	if err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// UpdateSpecializedOrder persists diet request changes.
func (repo *specializedOrderRepository) UpdateSpecializedOrder(ctx context.Context, spec *entity.SpecializedOrder) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SpecializedOrderModel{}).
		Where("id = ?", spec.ID).
		Updates(map[string]any{
			"frequency":          spec.Frequency,
			"diet_goal":          spec.DietGoal,
			"extra_instructions": spec.ExtraInstructions,
			"wants_consultation": spec.WantsConsultation,
			"extra_file_path":    spec.ExtraFilePath,
			"record_state":       spec.RecordState,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update specialized order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSpecializedOrderNotFound
	}

	return nil
}

// buildSummary resolves the requesting customer and assembles the read model.
func (repo *specializedOrderRepository) buildSummary(ctx context.Context, specM *model.SpecializedOrderModel) (*repository.SpecializedOrderSummary, error) {
	summary := &repository.SpecializedOrderSummary{
		Spec: toSpecializedOrderDomain(specM),
	}

	if specM.Order != nil {
		summary.Order = toOrderDomain(specM.Order)
	}
	if specM.Pet != nil {
		summary.Pet = toPetDomain(specM.Pet)
		if specM.Pet.Species != nil {
			summary.SpeciesName = specM.Pet.Species.Name
		}
	}

	if summary.Order != nil {
		var customerM model.CustomerModel
		err := repo.db.WithContext(ctx).
			Where("id = ?", summary.Order.CustomerID).
			First(&customerM).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(err)
		}
		if err == nil {
			summary.Customer = toCustomerDomain(&customerM)
		}
	}

	return summary, nil
}

func toSpecializedOrderDomain(m *model.SpecializedOrderModel) *entity.SpecializedOrder {
	return &entity.SpecializedOrder{
		ID:                m.ID,
		OrderID:           m.OrderID,
		PetID:             m.PetID,
		Frequency:         m.Frequency,
		DietGoal:          m.DietGoal,
		ExtraInstructions: m.ExtraInstructions,
		WantsConsultation: m.WantsConsultation,
		ExtraFilePath:     m.ExtraFilePath,
		RecordState:       m.RecordState,
	}
}

func fromSpecializedOrderDomain(e *entity.SpecializedOrder) *model.SpecializedOrderModel {
	state := e.RecordState
	if state == "" {
		state = entity.RecordStateActive
	}

	return &model.SpecializedOrderModel{
		ID:                e.ID,
		OrderID:           e.OrderID,
		PetID:             e.PetID,
		Frequency:         e.Frequency,
		DietGoal:          e.DietGoal,
		ExtraInstructions: e.ExtraInstructions,
		WantsConsultation: e.WantsConsultation,
		ExtraFilePath:     e.ExtraFilePath,
		RecordState:       state,
	}
}
