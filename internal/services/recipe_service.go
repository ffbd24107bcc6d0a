package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingRecipeFields = errors.New("title, ingredients and steps are required")
	ErrRecipeNotFound      = errors.New("recipe not found")
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListForUser returns the user's recipes newest-first, fully hydrated. When
// the user has declared allergies, any recipe tagged with one of them is
// excluded; a recipe with no allergen rows always passes the filter.
func (s *RecipeService) ListForUser(userID uuid.UUID) ([]dto.RecipeResponse, error) {
	query := s.hydrated().Where("user_id = ?", userID).Order("created_at DESC")

	allergies, err := s.declaredAllergies(userID)
	if err != nil {
		return nil, err
	}
	if len(allergies) > 0 {
		tagged := s.db.Model(&models.RecipeAllergen{}).
			Select("recipe_id").
			Where("allergen IN ?", allergies)
		query = query.Where("id NOT IN (?)", tagged)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	favorites, err := s.favoriteSet(userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RecipeResponse, len(recipes))
	for i := range recipes {
		out[i] = HydrateRecipe(&recipes[i], favorites[recipes[i].ID])
	}
	return out, nil
}

// Create inserts the recipe row and every child row as one transaction. Any
// child insert failure rolls back the recipe row too; no partial recipe is
// ever visible. Steps are numbered 1..N from the input array order.
func (s *RecipeService) Create(userID uuid.UUID, req *dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if req.Title == "" || len(req.Ingredients) == 0 || len(req.Steps) == 0 {
		return nil, ErrMissingRecipeFields
	}

	recipe := models.Recipe{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    req.Title,
		ImageURL: req.ImageURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		ingredients := make([]models.RecipeIngredient, len(req.Ingredients))
		for i, name := range req.Ingredients {
			ingredients[i] = models.RecipeIngredient{ID: uuid.New(), RecipeID: recipe.ID, Name: name}
		}
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}

		steps := make([]models.RecipeStep, len(req.Steps))
		for i, instruction := range req.Steps {
			steps[i] = models.RecipeStep{ID: uuid.New(), RecipeID: recipe.ID, Position: i + 1, Instruction: instruction}
		}
		if err := tx.Create(&steps).Error; err != nil {
			return err
		}

		if len(req.Allergens) > 0 {
			allergens := make([]models.RecipeAllergen, len(req.Allergens))
			for i, allergen := range req.Allergens {
				allergens[i] = models.RecipeAllergen{ID: uuid.New(), RecipeID: recipe.ID, Allergen: allergen}
			}
			if err := tx.Create(&allergens).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	var created models.Recipe
	if err := s.hydrated().First(&created, "id = ?", recipe.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to load created recipe: %w", err)
	}

	// A recipe cannot already be favorited at the moment it is created.
	resp := HydrateRecipe(&created, false)
	return &resp, nil
}

// Delete removes an owned recipe and all its dependent rows.
func (s *RecipeService) Delete(userID uuid.UUID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ? AND user_id = ?", recipeID, userID).Error; err != nil {
		return ErrRecipeNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{})
		tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeStep{})
		tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeAllergen{})
		tx.Where("recipe_id = ?", recipeID).Delete(&models.Favorite{})
		return tx.Delete(&recipe).Error
	})
}

// hydrated preloads the child rows the response shape needs. Steps come back
// ordered by position; ingredients and allergens are unordered sets.
func (s *RecipeService) hydrated() *gorm.DB {
	return s.db.
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Allergens")
}

func (s *RecipeService) declaredAllergies(userID uuid.UUID) ([]string, error) {
	var pref models.UserPreference
	err := s.db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return pref.Allergies, nil
}

func (s *RecipeService) favoriteSet(userID uuid.UUID) (map[uuid.UUID]bool, error) {
	var favorites []models.Favorite
	if err := s.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	set := make(map[uuid.UUID]bool, len(favorites))
	for _, f := range favorites {
		set[f.RecipeID] = true
	}
	return set, nil
}

// HydrateRecipe flattens a preloaded recipe into the response shape.
func HydrateRecipe(recipe *models.Recipe, isFavorite bool) dto.RecipeResponse {
	ingredients := make([]string, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		ingredients[i] = ing.Name
	}

	steps := make([]dto.StepResponse, len(recipe.Steps))
	for i, step := range recipe.Steps {
		steps[i] = dto.StepResponse{Position: step.Position, Instruction: step.Instruction}
	}

	allergens := make([]string, len(recipe.Allergens))
	for i, a := range recipe.Allergens {
		allergens[i] = a.Allergen
	}

	return dto.RecipeResponse{
		ID:          recipe.ID,
		UserID:      recipe.UserID,
		Title:       recipe.Title,
		ImageURL:    recipe.ImageURL,
		Ingredients: ingredients,
		Steps:       steps,
		Allergens:   allergens,
		IsFavorite:  isFavorite,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
}
