package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserPreference holds one row per user with three parallel string lists.
// Every update replaces all three lists wholesale; there is no partial patch.
type UserPreference struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Allergies          datatypes.JSONSlice[string] `json:"allergies"`
	DietaryPreferences datatypes.JSONSlice[string] `json:"dietary_preferences"`
	ForbiddenProducts  datatypes.JSONSlice[string] `json:"forbidden_products"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
