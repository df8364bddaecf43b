package usecase

import (
	"context"

	"github.com/PaulCari/PawPals/internal/domain/entity"
	"github.com/PaulCari/PawPals/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateSpecializedOrderInput defines the data required to request a
// personalized diet. The list fields arrive as JSON strings from multipart
// form fields and are decoded by the use case.
type CreateSpecializedOrderInput struct {
	PetID             uuid.UUID `json:"pet_id" form:"pet_id" validate:"required"`
	Frequency         string    `json:"frequency" form:"frequency"`
	DietGoal          string    `json:"diet_goal" form:"diet_goal"`
	ExtraInstructions string    `json:"extra_instructions" form:"extra_instructions"`
	WantsConsultation bool      `json:"wants_consultation" form:"wants_consultation"`

	// AllergiesJSON is a JSON array of allergy catalog ids.
	AllergiesJSON string `json:"allergies" form:"allergies"`
	// AllergyNote is a free-text description of allergies not in the catalog.
	AllergyNote string `json:"allergy_note" form:"allergy_note"`
	// ConditionsJSON is a JSON array of condition objects or plain strings.
	ConditionsJSON string `json:"conditions" form:"conditions"`
	// PreferencesJSON is a JSON array of preference objects or plain strings.
	PreferencesJSON string `json:"preferences" form:"preferences"`

	Prescription *FileUpload `json:"-" form:"-"`
	ExtraFile    *FileUpload `json:"-" form:"-"`
}

// SpecializedOrderOutput bundles the created order with its diet request.
type SpecializedOrderOutput struct {
	Order *entity.Order            `json:"order"`
	Spec  *entity.SpecializedOrder `json:"spec"`
}

// SpecializedOrderUsecase defines the interface for personalized diet requests.
type SpecializedOrderUsecase interface {
	// CreateSpecializedOrder validates pet ownership, creates the pending
	// order with its diet request, fans the clinical lists out into the pet's
	// record and stores the uploaded files.
	CreateSpecializedOrder(ctx context.Context, accountID uuid.UUID, input CreateSpecializedOrderInput) (*SpecializedOrderOutput, error)

	// ListSpecializedOrders retrieves the customer's diet requests, newest first.
	ListSpecializedOrders(ctx context.Context, accountID uuid.UUID) ([]*repository.SpecializedOrderSummary, error)

	// GetSpecializedOrder retrieves one of the customer's diet requests.
	// Returns not found when the request belongs to another customer.
	GetSpecializedOrder(ctx context.Context, accountID, specID uuid.UUID) (*repository.SpecializedOrderSummary, error)
}
