package model

import (
	"time"

	"github.com/google/uuid"
)

// SpecializedOrderModel mirrors the 'specialized_orders' table.
type SpecializedOrderModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID           uuid.UUID `gorm:"type:uuid;unique;not null"`
	PetID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Frequency         string    `gorm:"type:varchar(50)"`
	DietGoal          string    `gorm:"type:varchar(150)"`
	ExtraInstructions string    `gorm:"type:text"`
	WantsConsultation bool      `gorm:"not null;default:false"`
	ExtraFilePath     string    `gorm:"type:varchar(255)"`
	RecordState       string    `gorm:"type:char(1);not null;default:'A'"`

	Order *OrderModel `gorm:"foreignKey:OrderID"`
	Pet   *PetModel   `gorm:"foreignKey:PetID"`
}

// TableName explicitly sets the table name for GORM.
func (SpecializedOrderModel) TableName() string {
	return "specialized_orders"
}

// NutritionistModel mirrors the 'nutritionists' table.
type NutritionistModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID   *uuid.UUID `gorm:"type:uuid;unique"`
	Name        string     `gorm:"type:varchar(100);not null"`
	RecordState string     `gorm:"type:char(1);not null;default:'A'"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NutritionistModel) TableName() string {
	return "nutritionists"
}

// ConsultationModel mirrors the 'consultations' table.
type ConsultationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PetID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	NutritionistID  *uuid.UUID `gorm:"type:uuid;index"`
	Date            time.Time  `gorm:"not null"`
	Observations    string     `gorm:"type:text"`
	Recommendations string     `gorm:"type:text"`
	RecordState     string     `gorm:"type:char(1);not null;default:'A'"`

	Pet *PetModel `gorm:"foreignKey:PetID"`
}

// TableName explicitly sets the table name for GORM.
func (ConsultationModel) TableName() string {
	return "consultations"
}
