package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// serverError hides data-store failure detail from the caller unless the
// server runs in development mode.
func serverError(c *fiber.Ctx, cfg *config.Config, err error, message string) error {
	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())

	resp := dto.ErrorResponse{Error: true, Message: message}
	if cfg.Development() {
		resp.Detail = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}
