package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRecipeRequest struct {
	Title       string   `json:"title"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Allergens   []string `json:"allergens"`
}

type StepResponse struct {
	Position    int    `json:"position"`
	Instruction string `json:"instruction"`
}

// RecipeResponse is the hydrated recipe shape: the recipe row joined with its
// ingredients, ordered steps and allergens, plus the caller-relative favorite
// flag.
type RecipeResponse struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	Title       string         `json:"title"`
	ImageURL    string         `json:"image_url,omitempty"`
	Ingredients []string       `json:"ingredients"`
	Steps       []StepResponse `json:"steps"`
	Allergens   []string       `json:"allergens"`
	IsFavorite  bool           `json:"is_favorite"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
