package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SpeciesModel mirrors the 'species' table.
type SpeciesModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
}

// TableName explicitly sets the table name for GORM.
func (SpeciesModel) TableName() string {
	return "species"
}

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	RecordState string    `gorm:"type:char(1);not null;default:'A'"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// DishModel mirrors the 'dishes' table.
type DishModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string     `gorm:"type:varchar(150);not null"`
	Description      string     `gorm:"type:text"`
	Ingredients      string     `gorm:"type:text"`
	Price            float64    `gorm:"type:decimal(10,2);not null"`
	CategoryID       *uuid.UUID `gorm:"type:uuid"`
	SpeciesID        *uuid.UUID `gorm:"type:uuid"`
	ImagePath        string     `gorm:"type:varchar(255)"`
	IsRaw            bool       `gorm:"not null;default:false"`
	Published        bool       `gorm:"not null;default:true"`
	NutritionistMade bool       `gorm:"not null;default:false"`
	RecordState      string     `gorm:"type:char(1);not null;default:'A'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Species  *SpeciesModel  `gorm:"foreignKey:SpeciesID"`
	Tags     []*TagModel    `gorm:"many2many:dish_tags"`
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}

// PersonalDishModel mirrors the 'personal_dishes' table linking custom dishes to pets.
type PersonalDishModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DishID uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID  uuid.UUID `gorm:"type:uuid;not null;index"`

	Dish *DishModel `gorm:"foreignKey:DishID"`
}

// TableName explicitly sets the table name for GORM.
func (PersonalDishModel) TableName() string {
	return "personal_dishes"
}

// FavoriteDishModel mirrors the 'favorite_dishes' table.
type FavoriteDishModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_favorite_dishes_customer_dish,unique"`
	DishID     uuid.UUID `gorm:"type:uuid;not null;index:idx_favorite_dishes_customer_dish,unique"`
	AddedAt    time.Time `gorm:"not null"`

	Dish *DishModel `gorm:"foreignKey:DishID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteDishModel) TableName() string {
	return "favorite_dishes"
}
