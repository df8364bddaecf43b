package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet sex values.
const (
	PetSexMale   = "M"
	PetSexFemale = "H"
)

// Pet belongs to one customer and owns its clinical record: allergies,
// health conditions, prescriptions, consultation history and the
// personalized dishes assigned by nutritionists.
type Pet struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	Name         string    `json:"name"`
	SpeciesID    uuid.UUID `json:"species_id"`
	Breed        string    `json:"breed"`
	Age          int       `json:"age"`
	Sex          string    `json:"sex"` // "M" or "H"
	Weight       *float64  `json:"weight"`
	PhotoPath    string    `json:"photo_path"`
	Observations string    `json:"observations"`
	AgeUpdatedAt time.Time `json:"age_updated_at"` // Date the age field was last confirmed
	RecordState  string    `json:"record_state"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SpeciesAllergy is a catalog entry of known allergies.
type SpeciesAllergy struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RecordState string    `json:"record_state"`
}

// PetAllergy links a pet to a catalog allergy with a severity grade.
type PetAllergy struct {
	ID               uuid.UUID `json:"id"`
	PetID            uuid.UUID `json:"pet_id"`
	SpeciesAllergyID uuid.UUID `json:"species_allergy_id"`
	Severity         string    `json:"severity"`
	Description      string    `json:"description"`
	RecordState      string    `json:"record_state"`
}

// AllergyNote is a free-text allergy description attached to a pet by its
// owner when submitting a specialized order.
type AllergyNote struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	RecordState string    `json:"record_state"`
}

// HealthCondition records a diagnosed condition for a pet.
type HealthCondition struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	RecordState string    `json:"record_state"`
}

// DietaryPreference records a feeding preference for a pet.
type DietaryPreference struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RecordState string    `json:"record_state"`
}

// Prescription is a medical prescription file linked to a pet and,
// optionally, to the specialized order it was submitted with.
type Prescription struct {
	ID                 uuid.UUID  `json:"id"`
	PetID              uuid.UUID  `json:"pet_id"`
	SpecializedOrderID *uuid.UUID `json:"specialized_order_id"`
	Date               time.Time  `json:"date"`
	FilePath           string     `json:"file_path"`
	RecordState        string     `json:"record_state"`
}
