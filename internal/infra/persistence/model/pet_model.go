package model

import (
	"time"

	"github.com/google/uuid"
)

// PetModel mirrors the 'pets' table.
type PetModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	SpeciesID    uuid.UUID `gorm:"type:uuid;not null"`
	Breed        string    `gorm:"type:varchar(100)"`
	Age          int       `gorm:"not null"`
	Sex          string    `gorm:"type:char(1);not null"`
	Weight       *float64  `gorm:"type:decimal(5,2)"`
	PhotoPath    string    `gorm:"type:varchar(255)"`
	Observations string    `gorm:"type:text"`
	AgeUpdatedAt time.Time
	RecordState  string `gorm:"type:char(1);not null;default:'A'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Species *SpeciesModel `gorm:"foreignKey:SpeciesID"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}

// SpeciesAllergyModel mirrors the 'species_allergies' catalog table.
type SpeciesAllergyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SpeciesID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
}

// TableName explicitly sets the table name for GORM.
func (SpeciesAllergyModel) TableName() string {
	return "species_allergies"
}

// PetAllergyModel mirrors the 'pet_allergies' join table.
type PetAllergyModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetID            uuid.UUID `gorm:"type:uuid;not null;index:idx_pet_allergies_pet_catalog,unique"`
	SpeciesAllergyID uuid.UUID `gorm:"type:uuid;not null;index:idx_pet_allergies_pet_catalog,unique"`
	Severity         string    `gorm:"type:varchar(50);not null"`
	Description      string    `gorm:"type:text"`
	RecordState      string    `gorm:"type:char(1);not null;default:'A'"`

	SpeciesAllergy *SpeciesAllergyModel `gorm:"foreignKey:SpeciesAllergyID"`
}

// TableName explicitly sets the table name for GORM.
func (PetAllergyModel) TableName() string {
	return "pet_allergies"
}

// AllergyNoteModel mirrors the 'allergy_notes' table.
type AllergyNoteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AllergyNoteModel) TableName() string {
	return "allergy_notes"
}

// HealthConditionModel mirrors the 'health_conditions' table.
type HealthConditionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	DiagnosedAt time.Time
	RecordState string `gorm:"type:char(1);not null;default:'A'"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HealthConditionModel) TableName() string {
	return "health_conditions"
}

// DietaryPreferenceModel mirrors the 'dietary_preferences' table.
type DietaryPreferenceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DietaryPreferenceModel) TableName() string {
	return "dietary_preferences"
}

// PrescriptionModel mirrors the 'prescriptions' table.
type PrescriptionModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	SpecializedOrderID *uuid.UUID `gorm:"type:uuid;index"`
	Date               time.Time  `gorm:"not null"`
	FilePath           string     `gorm:"type:varchar(255);not null"`
	RecordState        string     `gorm:"type:char(1);not null;default:'A'"`
}

// TableName explicitly sets the table name for GORM.
func (PrescriptionModel) TableName() string {
	return "prescriptions"
}
