package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/domain/repository"

	"github.com/google/uuid"
)

// ReviewInput defines the data recorded when a diet request is reviewed.
type ReviewInput struct {
	Observations    string `json:"observations"`
	Recommendations string `json:"recommendations"`
	Approved        bool   `json:"approved"`
}

// CreateDishInput defines the data required to create a nutritionist dish.
type CreateDishInput struct {
	Name        string      `json:"name" form:"name" validate:"required"`
	Description string      `json:"description" form:"description"`
	Ingredients string      `json:"ingredients" form:"ingredients"`
	Price       float64     `json:"price" form:"price"`
	CategoryID  *uuid.UUID  `json:"category_id,omitempty" form:"category_id"`
	SpeciesID   *uuid.UUID  `json:"species_id,omitempty" form:"species_id"`
	IsRaw       bool        `json:"is_raw" form:"is_raw"`
	Image       *FileUpload `json:"-" form:"-"`
}

// MixDishInput defines the base dishes blended into a personalized dish.
type MixDishInput struct {
	SpecializedOrderID uuid.UUID   `json:"-"` // Taken from the route, never the body
	Name               string      `json:"name" validate:"required"`
	Description        string      `json:"description"`
	Price              float64     `json:"price"`
	BaseDishIDs        []uuid.UUID `json:"base_dish_ids" validate:"min=1"`
}

// SpecializedOrderDetailOutput is the full review view of a diet request.
type SpecializedOrderDetailOutput struct {
	Summary       *repository.SpecializedOrderSummary `json:"summary"`
	Allergies     []*repository.PetAllergyDetail      `json:"allergies"`
	AllergyNote   *entity.AllergyNote                 `json:"allergy_note,omitempty"`
	Conditions    []*entity.HealthCondition           `json:"conditions"`
	Preferences   []*entity.DietaryPreference         `json:"preferences"`
	Consultations []*entity.Consultation              `json:"consultations"`
	Prescriptions []*entity.Prescription              `json:"prescriptions"`
}

// NutritionistUsecase defines the interface for the nutritionist workflow.
type NutritionistUsecase interface {
	// ListPendingOrders retrieves the diet requests awaiting review, oldest first.
	ListPendingOrders(ctx context.Context) ([]*repository.SpecializedOrderSummary, error)

	// GetOrderDetail retrieves a diet request with the pet's clinical record.
	GetOrderDetail(ctx context.Context, specID uuid.UUID) (*SpecializedOrderDetailOutput, error)

	// ReviewOrder records a consultation and moves the order to reviewed or
	// observed depending on the verdict.
	ReviewOrder(ctx context.Context, specID uuid.UUID, input ReviewInput) (*entity.Consultation, error)

	// CreateMixDish creates an unpublished nutritionist dish from base dishes,
	// links it to the pet and notifies the owner that the diet is ready.
	CreateMixDish(ctx context.Context, input MixDishInput) (*entity.Dish, error)

	// CreatePersonalizedDish creates an unpublished nutritionist dish for the
	// pet of a diet request, with an optional image.
	CreatePersonalizedDish(ctx context.Context, specID uuid.UUID, input CreateDishInput) (*entity.Dish, error)

	// ListPersonalizedDishes retrieves the custom dishes assigned to a pet.
	ListPersonalizedDishes(ctx context.Context, petID uuid.UUID) ([]*entity.Dish, error)

	// ListPatients retrieves the pets with at least one consultation.
	ListPatients(ctx context.Context) ([]*repository.PatientSummary, error)

	// GetHistory retrieves all consultations, newest first.
	GetHistory(ctx context.Context) ([]*repository.ConsultationDetail, error)

	// SearchDishes retrieves active dishes matching the query, capped at ten rows.
	SearchDishes(ctx context.Context, query string) ([]*repository.DishDetail, error)

	// UploadPrescription stores a prescription file and links it to the diet
	// request and its pet.
	UploadPrescription(ctx context.Context, specID uuid.UUID, file FileUpload) (*entity.Prescription, error)
}
