package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite associates a user with a recipe. The (user_id, recipe_id) pair is
// unique; add and remove are both idempotent against this constraint.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_recipe;index" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	User   *User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Recipe *Recipe `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
