package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Username     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	RecordState  string    `gorm:"type:char(1);not null;default:'A'"`
	LastAccessAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles []AccountRoleModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(50);unique;not null"`
	Description string    `gorm:"type:varchar(255)"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// AccountRoleModel mirrors the 'account_roles' join table.
type AccountRoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RoleID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`

	Role *RoleModel `gorm:"foreignKey:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountRoleModel) TableName() string {
	return "account_roles"
}
