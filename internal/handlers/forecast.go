package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tricasthq/tricast/internal/models"
	"github.com/tricasthq/tricast/internal/services"
)

// ForecastPost handles POST forecast requests
// POST /v1/forecast
func (h *Handler) ForecastPost(c *fiber.Ctx) error {
	var body models.ForecastRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_JSON",
				Message: "Request body is not valid JSON: " + err.Error(),
			},
		})
	}

	response, err := h.forecastService.Execute(c.UserContext(), &body)
	if err != nil {
		return h.forecastError(c, err)
	}

	return c.JSON(response)
}

// forecastError maps service errors to HTTP responses.
func (h *Handler) forecastError(c *fiber.Ctx, err error) error {
	var svcErr *services.ServiceError
	if !errors.As(err, &svcErr) {
		h.logger.Error("Forecast failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "Internal server error",
			},
		})
	}

	status := statusForCode(svcErr.Code)
	if status == fiber.StatusInternalServerError {
		h.logger.Error("Forecast failed", "path", c.Path(), "code", svcErr.Code, "error", err)
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    svcErr.Code,
			Message: svcErr.Message,
			Details: svcErr.Details,
		},
	})
}

// statusForCode picks the HTTP status for a service error code. Requests the
// caller can fix are 400s; series whose numbers defeat the model are 422s.
func statusForCode(code string) int {
	switch code {
	case services.CodeInvalidCoefficient,
		services.CodeInvalidPeriod,
		services.CodeInvalidHorizon,
		services.CodeInsufficientSeries,
		services.CodeInvalidSeries,
		services.CodeInvalidInterval:
		return fiber.StatusBadRequest
	case services.CodeSeriesTooLong:
		return fiber.StatusRequestEntityTooLarge
	case services.CodeDegenerateSeasonalMean,
		services.CodeNonFiniteResult:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
