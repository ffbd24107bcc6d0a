package services

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add favorites a recipe for the user. Re-adding an existing pair is a no-op,
// not an error: the insert lands on the unique (user_id, recipe_id) index with
// ON CONFLICT DO NOTHING.
func (s *FavoriteService) Add(userID uuid.UUID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.Select("id").First(&recipe, "id = ?", recipeID).Error; err != nil {
		return ErrRecipeNotFound
	}

	favorite := models.Favorite{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoNothing: true,
	}).Create(&favorite).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes the pair if present. Removing a never-favorited recipe is
// not an error.
func (s *FavoriteService) Remove(userID uuid.UUID, recipeID uuid.UUID) error {
	result := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	return nil
}

// List returns the user's favorited recipes newest-favorited-first, in the
// same hydrated shape as the recipe listing. is_favorite is true by
// construction.
func (s *FavoriteService) List(userID uuid.UUID) ([]dto.RecipeResponse, error) {
	var recipes []models.Recipe
	err := s.db.
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Allergens").
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	out := make([]dto.RecipeResponse, len(recipes))
	for i := range recipes {
		out[i] = HydrateRecipe(&recipes[i], true)
	}
	return out, nil
}
