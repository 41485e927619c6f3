// Package router wires the HTTP surface: middlewares, the health endpoint
// and the versioned forecast API.
package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tricasthq/tricast/internal/cache"
	"github.com/tricasthq/tricast/internal/config"
	"github.com/tricasthq/tricast/internal/handlers"
	"github.com/tricasthq/tricast/internal/logging"
	"github.com/tricasthq/tricast/internal/middleware"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, responseCache cache.Cache, cfg *config.Config) *handlers.Handler {
	h := handlers.New(logger, responseCache, cfg)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger, "/health"))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)
	v1.Post("/forecast", h.ForecastPost)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, responseCache cache.Cache, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Tricast Forecaster",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, responseCache, cfg)

	return app
}
