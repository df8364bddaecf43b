package entity

import (
	"time"

	"github.com/google/uuid"
)

// SpecializedOrder is the one-to-one extension of an order that represents
// a custom-diet request. The parent order stays at total 0 and
// IncludesDish=false; its status is driven by the nutritionist review.
type SpecializedOrder struct {
	ID                uuid.UUID `json:"id"`
	OrderID           uuid.UUID `json:"order_id"`
	PetID             uuid.UUID `json:"pet_id"`
	Frequency         string    `json:"frequency"` // Meals per day / portion frequency, free text
	DietGoal          string    `json:"diet_goal"`
	ExtraInstructions string    `json:"extra_instructions"`
	WantsConsultation bool      `json:"wants_consultation"` // Customer asked for a live consultation
	ExtraFilePath     string    `json:"extra_file_path"`
	RecordState       string    `json:"record_state"`
}

// Nutritionist is a reviewing professional.
type Nutritionist struct {
	ID          uuid.UUID  `json:"id"`
	AccountID   *uuid.UUID `json:"account_id"`
	Name        string     `json:"name"`
	RecordState string     `json:"record_state"`
}

// Consultation is the written outcome of a nutritionist review, tied to the
// pet the specialized order was submitted for.
type Consultation struct {
	ID              uuid.UUID  `json:"id"`
	PetID           uuid.UUID  `json:"pet_id"`
	NutritionistID  *uuid.UUID `json:"nutritionist_id"`
	Date            time.Time  `json:"date"`
	Observations    string     `json:"observations"`
	Recommendations string     `json:"recommendations"`
	RecordState     string     `json:"record_state"`
}
