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

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
	cfg             *config.Config
}

func NewFavoriteHandler(favoriteService *services.FavoriteService, cfg *config.Config) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, cfg: cfg}
}

// List handles GET /favorites - hydrated recipes, newest-favorited first.
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	recipes, err := h.favoriteService.List(userID)
	if err != nil {
		return serverError(c, h.cfg, err, "Failed to fetch favorites")
	}

	return c.JSON(recipes)
}

// Add handles POST /favorites/:recipeId - idempotent.
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
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

	if err := h.favoriteService.Add(userID, recipeID); err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Recipe not found",
			})
		}
		return serverError(c, h.cfg, err, "Failed to add favorite")
	}

	return c.JSON(fiber.Map{"message": "Recipe added to favorites"})
}

// Remove handles DELETE /favorites/:recipeId - idempotent.
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
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

	if err := h.favoriteService.Remove(userID, recipeID); err != nil {
		return serverError(c, h.cfg, err, "Failed to remove favorite")
	}

	return c.JSON(fiber.Map{"message": "Recipe removed from favorites"})
}
