package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is owned by exactly one user. Child rows (ingredients, steps,
// allergens) are written in the same transaction as the recipe itself and
// cascade on delete; a recipe is never edited after creation.
type Recipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User        *User              `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Steps       []RecipeStep       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Allergens   []RecipeAllergen   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// RecipeIngredient is one free-text ingredient line. Unordered; duplicate
// strings are allowed.
type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Name     string    `gorm:"type:text;not null" json:"name"`
}

// RecipeStep is one instruction. Position is 1-based and assigned from the
// input array order at creation time, never by the caller.
type RecipeStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Position    int       `gorm:"not null" json:"position"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
}

// RecipeAllergen tags a recipe with a free-text allergen string, matched
// against the declared allergies in user preferences when listing.
type RecipeAllergen struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Allergen string    `gorm:"size:100;not null" json:"allergen"`
}
