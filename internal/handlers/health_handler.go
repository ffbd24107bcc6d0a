package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:     "ok",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		DB:         dbStatus,
		APIVersion: "1.0",
		Endpoints: []dto.Endpoint{
			{Method: "POST", Path: "/api/auth/register"},
			{Method: "POST", Path: "/api/auth/login"},
			{Method: "GET", Path: "/api/recipes"},
			{Method: "POST", Path: "/api/recipes"},
			{Method: "GET", Path: "/api/favorites"},
			{Method: "GET", Path: "/api/preferences"},
		},
	})
}
