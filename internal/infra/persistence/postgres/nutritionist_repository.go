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

// nutritionistRepository implements the domain.NutritionistRepository interface using GORM.
type nutritionistRepository struct {
	db *gorm.DB
}

// NewNutritionistRepository is the constructor for nutritionistRepository.
func NewNutritionistRepository(db *gorm.DB) repository.NutritionistRepository {
	return &nutritionistRepository{db: db}
}

// FindFirstNutritionist retrieves the oldest active nutritionist.
func (repo *nutritionistRepository) FindFirstNutritionist(ctx context.Context) (*entity.Nutritionist, error) {
	var nutritionistM model.NutritionistModel
	err := repo.db.WithContext(ctx).
		Where("record_state = ?", entity.RecordStateActive).
		Order("created_at ASC").
		First(&nutritionistM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNutritionistNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toNutritionistDomain(&nutritionistM), nil
}

// FindNutritionistByAccount retrieves the nutritionist owned by an account.
func (repo *nutritionistRepository) FindNutritionistByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Nutritionist, error) {
	var nutritionistM model.NutritionistModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND record_state = ?", accountID, entity.RecordStateActive).
		First(&nutritionistM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNutritionistNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toNutritionistDomain(&nutritionistM), nil
}

// CreateConsultation persists a review consultation.
func (repo *nutritionistRepository) CreateConsultation(ctx context.Context, consultation *entity.Consultation) error {
	consultationM := &model.ConsultationModel{
		ID:              consultation.ID,
		PetID:           consultation.PetID,
		NutritionistID:  consultation.NutritionistID,
		Date:            consultation.Date,
		Observations:    consultation.Observations,
		Recommendations: consultation.Recommendations,
		RecordState:     entity.RecordStateActive,
	}

	if err := repo.db.WithContext(ctx).Create(consultationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid pet or nutritionist reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create consultation")
	}

	consultation.ID = consultationM.ID
	consultation.RecordState = consultationM.RecordState

	return nil
}

// FindConsultationsByPet retrieves the pet's consultations, newest first.
func (repo *nutritionistRepository) FindConsultationsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Consultation, error) {
	var consultationModels []*model.ConsultationModel
	err := repo.db.WithContext(ctx).
		Where("pet_id = ? AND record_state = ?", petID, entity.RecordStateActive).
		Order("date DESC").
		Find(&consultationModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	consultations := make([]*entity.Consultation, 0, len(consultationModels))
	for _, consultationM := range consultationModels {
		consultations = append(consultations, toConsultationDomain(consultationM))
	}

	return consultations, nil
}

// FindPatients retrieves the pets with at least one consultation, with owner
// and species names and their visit counts.
func (repo *nutritionistRepository) FindPatients(ctx context.Context) ([]*repository.PatientSummary, error) {
	var petModels []*model.PetModel
	err := repo.db.WithContext(ctx).
		Preload("Species").
		Where("id IN (?)", repo.db.
			Model(&model.ConsultationModel{}).
			Select("DISTINCT pet_id").
			Where("record_state = ?", entity.RecordStateActive)).
		Find(&petModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	summaries := make([]*repository.PatientSummary, 0, len(petModels))
	for _, petM := range petModels {
		summary := &repository.PatientSummary{Pet: toPetDomain(petM)}
		if petM.Species != nil {
			summary.SpeciesName = petM.Species.Name
		}

		var ownerM model.CustomerModel
		err := repo.db.WithContext(ctx).
			Where("id = ?", petM.CustomerID).
			First(&ownerM).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(err)
		}
		if err == nil {
			summary.OwnerName = ownerM.Name
		}

		var lastM model.ConsultationModel
		err = repo.db.WithContext(ctx).
			Where("pet_id = ? AND record_state = ?", petM.ID, entity.RecordStateActive).
			Order("date DESC").
			First(&lastM).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(err)
		}
		if err == nil {
			summary.LastVisit = toConsultationDomain(&lastM)
		}

		err = repo.db.WithContext(ctx).
			Model(&model.ConsultationModel{}).
			Where("pet_id = ? AND record_state = ?", petM.ID, entity.RecordStateActive).
			Count(&summary.Consultation).Error
		if err != nil {
			return nil, errors.WithStack(err)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// FindHistory retrieves all consultations, newest first, with pet and owner names.
func (repo *nutritionistRepository) FindHistory(ctx context.Context) ([]*repository.ConsultationDetail, error) {
	var consultationModels []*model.ConsultationModel
	err := repo.db.WithContext(ctx).
		Preload("Pet").
		Where("record_state = ?", entity.RecordStateActive).
		Order("date DESC").
		Find(&consultationModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	details := make([]*repository.ConsultationDetail, 0, len(consultationModels))
	for _, consultationM := range consultationModels {
		detail := &repository.ConsultationDetail{Consultation: toConsultationDomain(consultationM)}
		if consultationM.Pet != nil {
			detail.PetName = consultationM.Pet.Name

			var ownerM model.CustomerModel
			err := repo.db.WithContext(ctx).
				Where("id = ?", consultationM.Pet.CustomerID).
				First(&ownerM).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.WithStack(err)
			}
			if err == nil {
				detail.OwnerName = ownerM.Name
			}
		}
		details = append(details, detail)
	}

	return details, nil
}

func toNutritionistDomain(m *model.NutritionistModel) *entity.Nutritionist {
	return &entity.Nutritionist{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Name:        m.Name,
		RecordState: m.RecordState,
	}
}

func toConsultationDomain(m *model.ConsultationModel) *entity.Consultation {
	return &entity.Consultation{
		ID:              m.ID,
		PetID:           m.PetID,
		NutritionistID:  m.NutritionistID,
		Date:            m.Date,
		Observations:    m.Observations,
		Recommendations: m.Recommendations,
		RecordState:     m.RecordState,
	}
}
