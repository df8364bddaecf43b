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

// petRepository implements the domain.PetRepository interface using GORM.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

// CreatePet persists a new pet.
func (repo *petRepository) CreatePet(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid customer or species reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPetSex
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// FindPetByID retrieves an active pet by id.
func (repo *petRepository) FindPetByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&petM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPetDomain(&petM), nil
}

// FindPetByIDAndCustomer retrieves a pet only when it belongs to the given customer.
func (repo *petRepository) FindPetByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ? AND record_state = ?", id, customerID, entity.RecordStateActive).
		First(&petM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPetDomain(&petM), nil
}

// FindPetsByCustomer retrieves the customer's active pets.
func (repo *petRepository) FindPetsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Pet, error) {
	var petModels []*model.PetModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND record_state = ?", customerID, entity.RecordStateActive).
		Order("created_at DESC").
		Find(&petModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for _, petM := range petModels {
		pets = append(pets, toPetDomain(petM))
	}

	return pets, nil
}

// UpdatePet persists pet changes.
func (repo *petRepository) UpdatePet(ctx context.Context, pet *entity.Pet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ?", pet.ID).
		Updates(map[string]any{
			"name":           pet.Name,
			"species_id":     pet.SpeciesID,
			"breed":          pet.Breed,
			"age":            pet.Age,
			"sex":            pet.Sex,
			"weight":         pet.Weight,
			"photo_path":     pet.PhotoPath,
			"observations":   pet.Observations,
			"age_updated_at": pet.AgeUpdatedAt,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "invalid species reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// DeletePet removes a pet row permanently.
func (repo *petRepository) DeletePet(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PetModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// DeactivatePet marks a pet inactive instead of deleting it.
func (repo *petRepository) DeactivatePet(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ?", id).
		Update("record_state", entity.RecordStateInactive)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// FindSpeciesByID retrieves a species catalog entry.
func (repo *petRepository) FindSpeciesByID(ctx context.Context, id uuid.UUID) (*entity.Species, error) {
	var speciesM model.SpeciesModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&speciesM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpeciesNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Species{
		ID:          speciesM.ID,
		Name:        speciesM.Name,
		RecordState: speciesM.RecordState,
	}, nil
}

// FindSpeciesAllergyByID retrieves an allergy catalog entry.
func (repo *petRepository) FindSpeciesAllergyByID(ctx context.Context, id uuid.UUID) (*entity.SpeciesAllergy, error) {
	var allergyM model.SpeciesAllergyModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND record_state = ?", id, entity.RecordStateActive).
		First(&allergyM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpeciesAllergyNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.SpeciesAllergy{
		ID:          allergyM.ID,
		Name:        allergyM.Name,
		RecordState: allergyM.RecordState,
	}, nil
}

// CreatePetAllergy links a catalog allergy to a pet.
func (repo *petRepository) CreatePetAllergy(ctx context.Context, allergy *entity.PetAllergy) error {
	allergyM := &model.PetAllergyModel{
		ID:               allergy.ID,
		PetID:            allergy.PetID,
		SpeciesAllergyID: allergy.SpeciesAllergyID,
		Severity:         allergy.Severity,
		Description:      allergy.Description,
		RecordState:      entity.RecordStateActive,
	}

	if err := repo.db.WithContext(ctx).Create(allergyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAllergyAlreadyRegistered
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid pet or allergy reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to register allergy")
	}

	allergy.ID = allergyM.ID
	allergy.RecordState = allergyM.RecordState

	return nil
}

// FindPetAllergy retrieves an existing pet/catalog allergy link.
func (repo *petRepository) FindPetAllergy(ctx context.Context, petID, speciesAllergyID uuid.UUID) (*entity.PetAllergy, error) {
	var allergyM model.PetAllergyModel
	err := repo.db.WithContext(ctx).
		Where("pet_id = ? AND species_allergy_id = ? AND record_state = ?", petID, speciesAllergyID, entity.RecordStateActive).
		First(&allergyM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetAllergyNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPetAllergyDomain(&allergyM), nil
}

// FindAllergiesByPet retrieves the pet's allergies with catalog names.
func (repo *petRepository) FindAllergiesByPet(ctx context.Context, petID uuid.UUID) ([]*repository.PetAllergyDetail, error) {
	var allergyModels []*model.PetAllergyModel
	err := repo.db.WithContext(ctx).
		Preload("SpeciesAllergy").
		Where("pet_id = ? AND record_state = ?", petID, entity.RecordStateActive).
		Find(&allergyModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	details := make([]*repository.PetAllergyDetail, 0, len(allergyModels))
	for _, allergyM := range allergyModels {
		detail := &repository.PetAllergyDetail{Allergy: toPetAllergyDomain(allergyM)}
		if allergyM.SpeciesAllergy != nil {
			detail.AllergyName = allergyM.SpeciesAllergy.Name
		}
		details = append(details, detail)
	}

	return details, nil
}

// CreateAllergyNote persists a free-text allergy description.
func (repo *petRepository) CreateAllergyNote(ctx context.Context, note *entity.AllergyNote) error {
	noteM := &model.AllergyNoteModel{
		ID:          note.ID,
		PetID:       note.PetID,
		Description: note.Description,
		RecordState: entity.RecordStateActive,
	}

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid pet reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create allergy note")
	}

	note.ID = noteM.ID
	note.Date = noteM.CreatedAt
	note.RecordState = noteM.RecordState

	return nil
}

// FindLatestAllergyNoteByPet retrieves the most recent allergy note.
func (repo *petRepository) FindLatestAllergyNoteByPet(ctx context.Context, petID uuid.UUID) (*entity.AllergyNote, error) {
	var noteM model.AllergyNoteModel
	err := repo.db.WithContext(ctx).
		Where("pet_id = ? AND record_state = ?", petID, entity.RecordStateActive).
		Order("created_at DESC").
		First(&noteM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return &entity.AllergyNote{
		ID:          noteM.ID,
		PetID:       noteM.PetID,
		Description: noteM.Description,
		RecordState: noteM.RecordState,
		Date:        noteM.CreatedAt,
	}, nil
}

// CreateHealthCondition persists a diagnosed condition.
func (repo *petRepository) CreateHealthCondition(ctx context.Context, condition *entity.HealthCondition) error {
	conditionM := &model.HealthConditionModel{
		ID:          condition.ID,
		PetID:       condition.PetID,
		Name:        condition.Name,
		Description: condition.Description,
		DiagnosedAt: condition.Date,
		RecordState: entity.RecordStateActive,
	}

	if err := repo.db.WithContext(ctx).Create(conditionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid pet reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create health condition")
	}

	condition.ID = conditionM.ID
	condition.RecordState = conditionM.RecordState

	return nil
}

// FindConditionsByPet retrieves the pet's conditions, newest first.
func (repo *petRepository) FindConditionsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.HealthCondition, error) {
	var conditionModels []*model.HealthConditionModel
	err := repo.db.WithContext(ctx).
		Where("pet_id = ? AND record_state = ?", petID, entity.RecordStateActive).
		Order("created_at DESC").
		Find(&conditionModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	conditions := make([]*entity.HealthCondition, 0, len(conditionModels))
	for _, conditionM := range conditionModels {
		conditions = append(conditions, &entity.HealthCondition{
			ID:          conditionM.ID,
			PetID:       conditionM.PetID,
			Name:        conditionM.Name,
			Description: conditionM.Description,
			Date:        conditionM.DiagnosedAt,
			RecordState: conditionM.RecordState,
		})
	}

	return conditions, nil
}

// CreateDietaryPreference persists a feeding preference.
func (repo *petRepository) CreateDietaryPreference(ctx context.Context, preference *entity.DietaryPreference) error {
	preferenceM := &model.DietaryPreferenceModel{
		ID:          preference.ID,
		PetID:       preference.PetID,
		Name:        preference.Name,
		Description: preference.Description,
		RecordState: entity.RecordStateActive,
	}

	if err := repo.db.WithContext(ctx).Create(preferenceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid pet reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dietary preference")
	}

	preference.ID = preferenceM.ID
	preference.RecordState = preferenceM.RecordState

	return nil
}

// FindPreferencesByPet retrieves the pet's feeding preferences.
func (repo *petRepository) FindPreferencesByPet(ctx context.Context, petID uuid.UUID) ([]*entity.DietaryPreference, error) {
	var preferenceModels []*model.DietaryPreferenceModel
	err := repo.db.WithContext(ctx).
		Where("pet_id = ? AND record_state = ?", petID, entity.RecordStateActive).
		Order("created_at DESC").
		Find(&preferenceModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	preferences := make([]*entity.DietaryPreference, 0, len(preferenceModels))
	for _, preferenceM := range preferenceModels {
		preferences = append(preferences, &entity.DietaryPreference{
			ID:          preferenceM.ID,
			PetID:       preferenceM.PetID,
			Name:        preferenceM.Name,
			Description: preferenceM.Description,
			RecordState: preferenceM.RecordState,
		})
	}

	return preferences, nil
}

// CreatePrescription persists a prescription file reference.
func (repo *petRepository) CreatePrescription(ctx context.Context, prescription *entity.Prescription) error {
	prescriptionM := &model.PrescriptionModel{
		ID:                 prescription.ID,
		PetID:              prescription.PetID,
		SpecializedOrderID: prescription.SpecializedOrderID,
		Date:               prescription.Date,
		FilePath:           prescription.FilePath,
		RecordState:        entity.RecordStateActive,
	}

	if err := repo.db.WithContext(ctx).Create(prescriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid pet or specialized order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create prescription")
	}

	prescription.ID = prescriptionM.ID
	prescription.RecordState = prescriptionM.RecordState

	return nil
}

// FindPrescriptionsByPet retrieves the pet's prescriptions, newest first.
func (repo *petRepository) FindPrescriptionsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Prescription, error) {
	var prescriptionModels []*model.PrescriptionModel
	err := repo.db.WithContext(ctx).
		Where("pet_id = ? AND record_state = ?", petID, entity.RecordStateActive).
		Order("date DESC").
		Find(&prescriptionModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toPrescriptionDomains(prescriptionModels), nil
}

// FindPrescriptionsBySpecializedOrder retrieves the prescriptions attached to one specialized order.
func (repo *petRepository) FindPrescriptionsBySpecializedOrder(ctx context.Context, specializedOrderID uuid.UUID) ([]*entity.Prescription, error) {
	var prescriptionModels []*model.PrescriptionModel
	err := repo.db.WithContext(ctx).
		Where("specialized_order_id = ? AND record_state = ?", specializedOrderID, entity.RecordStateActive).
		Order("date DESC").
		Find(&prescriptionModels).Error

	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toPrescriptionDomains(prescriptionModels), nil
}

func toPrescriptionDomains(models []*model.PrescriptionModel) []*entity.Prescription {
	prescriptions := make([]*entity.Prescription, 0, len(models))
	for _, prescriptionM := range models {
		prescriptions = append(prescriptions, &entity.Prescription{
			ID:                 prescriptionM.ID,
			PetID:              prescriptionM.PetID,
			SpecializedOrderID: prescriptionM.SpecializedOrderID,
			Date:               prescriptionM.Date,
			FilePath:           prescriptionM.FilePath,
			RecordState:        prescriptionM.RecordState,
		})
	}

	return prescriptions
}

func toPetAllergyDomain(m *model.PetAllergyModel) *entity.PetAllergy {
	return &entity.PetAllergy{
		ID:               m.ID,
		PetID:            m.PetID,
		SpeciesAllergyID: m.SpeciesAllergyID,
		Severity:         m.Severity,
		Description:      m.Description,
		RecordState:      m.RecordState,
	}
}

func toPetDomain(m *model.PetModel) *entity.Pet {
	return &entity.Pet{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		Name:         m.Name,
		SpeciesID:    m.SpeciesID,
		Breed:        m.Breed,
		Age:          m.Age,
		Sex:          m.Sex,
		Weight:       m.Weight,
		PhotoPath:    m.PhotoPath,
		Observations: m.Observations,
		AgeUpdatedAt: m.AgeUpdatedAt,
		RecordState:  m.RecordState,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromPetDomain(e *entity.Pet) *model.PetModel {
	state := e.RecordState
	if state == "" {
		state = entity.RecordStateActive
	}

	return &model.PetModel{
		ID:           e.ID,
		CustomerID:   e.CustomerID,
		Name:         e.Name,
		SpeciesID:    e.SpeciesID,
		Breed:        e.Breed,
		Age:          e.Age,
		Sex:          e.Sex,
		Weight:       e.Weight,
		PhotoPath:    e.PhotoPath,
		Observations: e.Observations,
		AgeUpdatedAt: e.AgeUpdatedAt,
		RecordState:  state,
	}
}
