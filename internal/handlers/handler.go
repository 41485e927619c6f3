package handlers

import (
	"github.com/tricasthq/tricast/internal/cache"
	"github.com/tricasthq/tricast/internal/config"
	"github.com/tricasthq/tricast/internal/logging"
	"github.com/tricasthq/tricast/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger          *logging.Logger
	forecastService *services.ForecastService
}

// New creates a new handler instance
func New(logger *logging.Logger, responseCache cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		logger:          logger,
		forecastService: services.NewForecastService(logger, responseCache, cfg),
	}
}
