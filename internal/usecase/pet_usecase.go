package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/domain/repository"

	"github.com/google/uuid"
)

// CreatePetInput defines the data required to register a pet.
type CreatePetInput struct {
	Name         string      `json:"name" form:"name" validate:"required"`
	SpeciesID    uuid.UUID   `json:"species_id" form:"species_id" validate:"required"`
	Breed        string      `json:"breed" form:"breed"`
	Age          int         `json:"age" form:"age"`
	Sex          string      `json:"sex" form:"sex" validate:"required"`
	Weight       *float64    `json:"weight,omitempty" form:"weight"`
	Observations string      `json:"observations" form:"observations"`
	Photo        *FileUpload `json:"-" form:"-"`
}

// UpdatePetInput defines the editable pet fields.
type UpdatePetInput struct {
	Name         *string     `json:"name,omitempty" form:"name"`
	SpeciesID    *uuid.UUID  `json:"species_id,omitempty" form:"species_id"`
	Breed        *string     `json:"breed,omitempty" form:"breed"`
	Age          *int        `json:"age,omitempty" form:"age"`
	Sex          *string     `json:"sex,omitempty" form:"sex"`
	Weight       *float64    `json:"weight,omitempty" form:"weight"`
	Observations *string     `json:"observations,omitempty" form:"observations"`
	Photo        *FileUpload `json:"-" form:"-"`
}

// AddAllergyInput links a catalog allergy to a pet.
type AddAllergyInput struct {
	SpeciesAllergyID uuid.UUID `json:"species_allergy_id" validate:"required"`
	Severity         string    `json:"severity"`
	Description      string    `json:"description"`
}

// AddConditionInput records a diagnosed condition for a pet.
type AddConditionInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// PetDetailOutput bundles a pet with its full clinical record.
type PetDetailOutput struct {
	Pet           *entity.Pet                    `json:"pet"`
	SpeciesName   string                         `json:"species_name"`
	Allergies     []*repository.PetAllergyDetail `json:"allergies"`
	AllergyNote   *entity.AllergyNote            `json:"allergy_note,omitempty"`
	Conditions    []*entity.HealthCondition      `json:"conditions"`
	Preferences   []*entity.DietaryPreference    `json:"preferences"`
	Consultations []*entity.Consultation         `json:"consultations"`
	Prescriptions []*entity.Prescription         `json:"prescriptions"`
	Menus         []*entity.Dish                 `json:"menus"`
}

// PetUsecase defines the interface for pet management operations.
type PetUsecase interface {
	// CreatePet registers a pet for the authenticated customer. When no photo
	// is uploaded a species default image is assigned.
	CreatePet(ctx context.Context, accountID uuid.UUID, input CreatePetInput) (*entity.Pet, error)

	// ListPets retrieves the customer's active pets.
	ListPets(ctx context.Context, accountID uuid.UUID) ([]*entity.Pet, error)

	// GetPet retrieves one pet with its clinical record. Returns not found
	// when the pet belongs to another customer.
	GetPet(ctx context.Context, accountID, petID uuid.UUID) (*PetDetailOutput, error)

	// UpdatePet updates the pet's editable fields.
	UpdatePet(ctx context.Context, accountID, petID uuid.UUID, input UpdatePetInput) (*entity.Pet, error)

	// DeletePet removes a pet. Pets with active specialized orders are
	// deactivated instead of deleted.
	DeletePet(ctx context.Context, accountID, petID uuid.UUID) error

	// ListAllergies retrieves the pet's allergies with their catalog names.
	ListAllergies(ctx context.Context, accountID, petID uuid.UUID) ([]*repository.PetAllergyDetail, error)

	// AddAllergy links a catalog allergy to the pet. Returns a conflict when
	// the allergy is already registered.
	AddAllergy(ctx context.Context, accountID, petID uuid.UUID, input AddAllergyInput) (*repository.PetAllergyDetail, error)

	// ListConditions retrieves the pet's diagnosed conditions, newest first.
	ListConditions(ctx context.Context, accountID, petID uuid.UUID) ([]*entity.HealthCondition, error)

	// AddCondition records a diagnosed condition for the pet.
	AddCondition(ctx context.Context, accountID, petID uuid.UUID, input AddConditionInput) (*entity.HealthCondition, error)

	// ListPrescriptions retrieves the pet's prescriptions, newest first.
	ListPrescriptions(ctx context.Context, accountID, petID uuid.UUID) ([]*entity.Prescription, error)
}
