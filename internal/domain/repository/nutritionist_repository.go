package repository

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors for nutritionist lookups.
var (
	ErrNutritionistNotFound = errors.New("nutritionist not found")
	ErrConsultationNotFound = errors.New("consultation not found")
)

// PatientSummary pairs a consulted pet with its owner and species names.
type PatientSummary struct {
	Pet          *entity.Pet          `json:"pet"`
	OwnerName    string               `json:"owner_name"`
	SpeciesName  string               `json:"species_name"`
	LastVisit    *entity.Consultation `json:"last_visit"`
	Consultation int64                `json:"consultation_count"`
}

// ConsultationDetail pairs a consultation with the pet it concerns.
type ConsultationDetail struct {
	Consultation *entity.Consultation `json:"consultation"`
	PetName      string               `json:"pet_name"`
	OwnerName    string               `json:"owner_name"`
}

// NutritionistRepository manages nutritionists and their consultations.
type NutritionistRepository interface {
	// FindFirstNutritionist retrieves the oldest active nutritionist.
	FindFirstNutritionist(ctx context.Context) (*entity.Nutritionist, error)

	// FindNutritionistByAccount retrieves the nutritionist owned by an account.
	FindNutritionistByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Nutritionist, error)

	// CreateConsultation persists a review consultation.
	CreateConsultation(ctx context.Context, consultation *entity.Consultation) error

	// FindConsultationsByPet retrieves the pet's consultations, newest first.
	FindConsultationsByPet(ctx context.Context, petID uuid.UUID) ([]*entity.Consultation, error)

	// FindPatients retrieves the pets with at least one consultation, together
	// with owner and species names and their visit counts.
	FindPatients(ctx context.Context) ([]*PatientSummary, error)

	// FindHistory retrieves all consultations, newest first, with pet and
	// owner names.
	FindHistory(ctx context.Context) ([]*ConsultationDetail, error)
}
