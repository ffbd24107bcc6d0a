package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/cooking-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	recipeHandler *handlers.RecipeHandler,
	favoriteHandler *handlers.FavoriteHandler,
	preferenceHandler *handlers.PreferenceHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Protected routes - apply JWT middleware to individual routes so it
	// never affects the public ones.
	jwtProtected := middleware.JWTProtected(cfg)

	api.Get("/check", jwtProtected, authHandler.Check)

	api.Get("/recipes", jwtProtected, recipeHandler.List)
	api.Post("/recipes", jwtProtected, recipeHandler.Create)
	api.Delete("/recipes/:recipeId", jwtProtected, recipeHandler.Delete)

	api.Get("/favorites", jwtProtected, favoriteHandler.List)
	api.Post("/favorites/:recipeId", jwtProtected, favoriteHandler.Add)
	api.Delete("/favorites/:recipeId", jwtProtected, favoriteHandler.Remove)

	api.Get("/preferences", jwtProtected, preferenceHandler.Get)
	api.Put("/preferences", jwtProtected, preferenceHandler.Update)
}
