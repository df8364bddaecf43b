package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors for pet and clinical-record lookups.
var (
	ErrPetNotFound            = errors.New("pet not found")
	ErrSpeciesNotFound        = errors.New("species not found")
	ErrSpeciesAllergyNotFound = errors.New("species allergy not found")
	ErrPetAllergyNotFound     = errors.New("pet allergy not found")
)

// PetAllergyDetail pairs a pet allergy with its catalog entry name.
type PetAllergyDetail struct {
	Allergy     *entity.PetAllergy `json:"allergy"`
	AllergyName string             `json:"allergy_name"`
}

// PetRepository manages pets and their clinical records.
type PetRepository interface {
	// CreatePet persists a new pet.
	CreatePet(ctx context.Context, pet *entity.Pet) error

	// FindPetByID retrieves an active pet by id.
	FindPetByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// FindPetByIDAndCustomer retrieves a pet only when it belongs to the
	// given customer.
	FindPetByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*entity.Pet, error)

	// FindPetsByCustomer retrieves the customer's active pets.
	FindPetsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Pet, error)

	// UpdatePet persists pet changes.
	UpdatePet(ctx context.Context, pet *entity.Pet) error

	// DeletePet removes a pet row permanently.
	DeletePet(ctx context.Context, id uuid.UUID) error

	// DeactivatePet marks a pet inactive instead of deleting it.
	DeactivatePet(ctx context.Context, id uuid.UUID) error

	// FindSpeciesByID retrieves a species catalog entry.
	FindSpeciesByID(ctx context.Context, id uuid.UUID) (*entity.Species, error)

	// FindSpeciesAllergyByID retrieves an allergy catalog entry.
	FindSpeciesAllergyByID(ctx context.Context, id uuid.UUID) (*entity.SpeciesAllergy, error)

	// CreatePetAllergy links a catalog allergy to a pet.
	CreatePetAllergy(ctx context.Context, allergy *entity.PetAllergy) error

	// FindPetAllergy retrieves an existing pet/catalog allergy link.
	FindPetAllergy(ctx context.Context, petID, speciesAllergyID uuid.UUID) (*entity.PetAllergy, error)

	// FindAllergiesByPet retrieves the pet's allergies with catalog names.
	FindAllergiesByPet(ctx context.Context, petID uuid.UUID) ([]*PetAllergyDetail, error)

	// CreateAllergyNote persists a free-text allergy description.
	CreateAllergyNote(ctx context.Context, note *entity.AllergyNote) error

	// FindLatestAllergyNoteByPet retrieves the most recent allergy note.
	FindLatestAllergyNoteByPet(ctx context.Context, petID uuid.UUID) (*entity.AllergyNote, error)

	// CreateHealthCondition persists a diagnosed condition.
	CreateHealthCondition(ctx context.Context, condition *entity.HealthCondition) error

	// FindConditionsByPet retrieves the pet's conditions, newest first.
	FindConditionsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.HealthCondition, error)

	// CreateDietaryPreference persists a feeding preference.
	CreateDietaryPreference(ctx context.Context, preference *entity.DietaryPreference) error

	// FindPreferencesByPet retrieves the pet's feeding preferences.
	FindPreferencesByPet(ctx context.Context, petID uuid.UUID) ([]*entity.DietaryPreference, error)

	// CreatePrescription persists a prescription file reference.
	CreatePrescription(ctx context.Context, prescription *entity.Prescription) error

	// FindPrescriptionsByPet retrieves the pet's prescriptions, newest first.
	FindPrescriptionsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Prescription, error)

	// FindPrescriptionsBySpecializedOrder retrieves the prescriptions
	// attached to one specialized order.
	FindPrescriptionsBySpecializedOrder(ctx context.Context, specializedOrderID uuid.UUID) ([]*entity.Prescription, error)
}
