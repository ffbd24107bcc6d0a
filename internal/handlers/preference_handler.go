package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PreferenceHandler struct {
	preferenceService *services.PreferenceService
	cfg               *config.Config
}

func NewPreferenceHandler(preferenceService *services.PreferenceService, cfg *config.Config) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService, cfg: cfg}
}

// Get handles GET /preferences - empty lists when nothing was saved yet.
func (h *PreferenceHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	prefs, err := h.preferenceService.Get(userID)
	if err != nil {
		return serverError(c, h.cfg, err, "Failed to fetch preferences")
	}

	return c.JSON(prefs)
}

// Update handles PUT /preferences - wholesale replace of all three lists.
func (h *PreferenceHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.PreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	prefs, err := h.preferenceService.Upsert(userID, &req)
	if err != nil {
		return serverError(c, h.cfg, err, "Failed to save preferences")
	}

	return c.JSON(prefs)
}
