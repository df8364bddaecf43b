package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentGatewayModel mirrors the 'payment_gateways' table.
type PaymentGatewayModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentGatewayModel) TableName() string {
	return "payment_gateways"
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;unique;not null"`
	Amount    float64   `gorm:"type:decimal(10,2);not null"`
	Date      time.Time `gorm:"not null"`
	Status    string    `gorm:"type:varchar(30);not null"`
	GatewayID uuid.UUID `gorm:"type:uuid;not null"`
	ProofPath string    `gorm:"type:varchar(255)"`

	Gateway *PaymentGatewayModel `gorm:"foreignKey:GatewayID"`
	Order   *OrderModel          `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
