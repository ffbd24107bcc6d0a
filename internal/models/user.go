package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account keyed by phone number. Phone is the sole natural key;
// username is display-only and carries no uniqueness constraint.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Phone        string    `gorm:"size:32;not null;uniqueIndex" json:"phone"`
	Username     string    `gorm:"size:100" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
