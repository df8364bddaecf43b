package model

import (
	"github.com/google/uuid"
)

// MembershipPlanModel mirrors the 'membership_plans' table.
type MembershipPlanModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);unique;not null"`
	DurationDays int       `gorm:"not null"`
	Price        float64   `gorm:"type:decimal(10,2);not null"`
	Description  string    `gorm:"type:text"`
	Benefits     string    `gorm:"type:text"`
	RecordState  string    `gorm:"type:char(1);not null;default:'A'"`
}

// TableName explicitly sets the table name for GORM.
func (MembershipPlanModel) TableName() string {
	return "membership_plans"
}
