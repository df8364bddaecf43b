package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups dishes in the catalog.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RecordState string    `json:"record_state"`
}

// Species is the animal species a dish is suitable for, and the species
// of registered pets.
type Species struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RecordState string    `json:"record_state"`
}

// Tag is a free label attached to dishes ("BARF", "sin gluten", ...).
type Tag struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RecordState string    `json:"record_state"`
}

// Dish is a catalog item. Custom dishes created by nutritionists are
// unpublished and linked to exactly one pet through PersonalDish.
type Dish struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Ingredients      string     `json:"ingredients"`
	Price            float64    `json:"price"`
	CategoryID       *uuid.UUID `json:"category_id"`
	SpeciesID        *uuid.UUID `json:"species_id"`
	ImagePath        string     `json:"image_path"`
	IsRaw            bool       `json:"is_raw"`    // BARF style raw food
	Published        bool       `json:"published"` // Hidden dishes never show in the public menu
	NutritionistMade bool       `json:"nutritionist_made"`
	RecordState      string     `json:"record_state"`
	Tags             []Tag      `json:"tags,omitempty"` // Populated on eager-loaded reads
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PersonalDish links a custom dish to the single pet it was created for.
type PersonalDish struct {
	ID     uuid.UUID `json:"id"`
	DishID uuid.UUID `json:"dish_id"`
	PetID  uuid.UUID `json:"pet_id"`
}

// FavoriteDish is the customer/dish favorites join row.
type FavoriteDish struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	DishID     uuid.UUID `json:"dish_id"`
	AddedAt    time.Time `json:"added_at"`
}
