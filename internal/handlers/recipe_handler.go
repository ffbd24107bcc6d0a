package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
	cfg           *config.Config
}

func NewRecipeHandler(recipeService *services.RecipeService, cfg *config.Config) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, cfg: cfg}
}

// List handles GET /recipes - the caller's recipes, hydrated and filtered
// against their declared allergies.
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	recipes, err := h.recipeService.ListForUser(userID)
	if err != nil {
		return serverError(c, h.cfg, err, "Failed to fetch recipes")
	}

	return c.JSON(recipes)
}

// Create handles POST /recipes - writes the recipe and all child rows as one
// atomic unit.
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	recipe, err := h.recipeService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrMissingRecipeFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serverError(c, h.cfg, err, "Failed to create recipe")
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// Delete handles DELETE /recipes/:recipeId - owner-only.
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	recipeID, err := uuid.Parse(c.Params("recipeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid recipe ID",
		})
	}

	if err := h.recipeService.Delete(userID, recipeID); err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Recipe not found",
			})
		}
		return serverError(c, h.cfg, err, "Failed to delete recipe")
	}

	return c.JSON(fiber.Map{"message": "Recipe deleted"})
}
