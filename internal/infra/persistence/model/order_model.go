package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AddressID    *uuid.UUID `gorm:"type:uuid"`
	Date         time.Time  `gorm:"not null"`
	Total        float64    `gorm:"type:decimal(10,2);not null;default:0"`
	Status       string     `gorm:"type:varchar(30);not null"`
	IncludesDish bool       `gorm:"not null;default:false"`

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DishID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int       `gorm:"not null"`
	Subtotal float64   `gorm:"type:decimal(10,2);not null"`

	Dish *DishModel `gorm:"foreignKey:DishID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// DeliveryControlModel mirrors the 'delivery_controls' table.
type DeliveryControlModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID  `gorm:"type:uuid;unique;not null"`
	DeliveredAt *time.Time
	Confirmed   bool       `gorm:"not null;default:false"`
	CourierID   *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryControlModel) TableName() string {
	return "delivery_controls"
}
