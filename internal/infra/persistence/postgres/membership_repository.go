package postgres

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/domain/repository"
	"github.com/PaulCari/PawPals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// membershipRepository implements the domain.MembershipRepository interface using GORM.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// FindPlans retrieves the active plans, cheapest first.
func (repo *membershipRepository) FindPlans(ctx context.Context) ([]*entity.MembershipPlan, error) {
	var planModels []*model.MembershipPlanModel
	err := repo.db.WithContext(ctx).
		Where("record_state = ?", entity.RecordStateActive).
		Order("price ASC").
		Find(&planModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	plans := make([]*entity.MembershipPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toMembershipPlanDomain(planM))
	}

	return plans, nil
}

// FindPlanByID retrieves an active plan by id.
func (repo *membershipRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error) {
	var planM model.MembershipPlanModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&planM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toMembershipPlanDomain(&planM), nil
}

// FindPlanByName retrieves an active plan by its unique name.
func (repo *membershipRepository) FindPlanByName(ctx context.Context, name string) (*entity.MembershipPlan, error) {
	var planM model.MembershipPlanModel
	err := repo.db.WithContext(ctx).
		Where("name = ? AND record_state = ?", name, entity.RecordStateActive).
		First(&planM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toMembershipPlanDomain(&planM), nil
}

func toMembershipPlanDomain(m *model.MembershipPlanModel) *entity.MembershipPlan {
	return &entity.MembershipPlan{
		ID:           m.ID,
		Name:         m.Name,
		DurationDays: m.DurationDays,
		Price:        m.Price,
		Description:  m.Description,
		Benefits:     m.Benefits,
		RecordState:  m.RecordState,
	}
}
