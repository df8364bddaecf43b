package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID        uuid.UUID  `gorm:"type:uuid;unique;not null"`
	Name             string     `gorm:"type:varchar(100);not null"`
	Phone            string     `gorm:"type:varchar(20)"`
	PhotoPath        string     `gorm:"type:varchar(255)"`
	MembershipPlanID *uuid.UUID `gorm:"type:uuid"`
	RecordState      string     `gorm:"type:char(1);not null;default:'A'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Account        *AccountModel        `gorm:"foreignKey:AccountID"`
	MembershipPlan *MembershipPlanModel `gorm:"foreignKey:MembershipPlanID"`
	Addresses      []*AddressModel      `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Reference   string    `gorm:"type:text"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	IsPrimary   bool      `gorm:"not null;default:false"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(150);not null"`
	Message     string     `gorm:"type:text;not null"`
	Date        time.Time  `gorm:"not null"`
	Read        bool       `gorm:"not null;default:false"`
	Type        string     `gorm:"type:varchar(50);not null"`
	ReferenceID *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
