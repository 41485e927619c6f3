package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tricasthq/tricast/internal/logging"
	"github.com/tricasthq/tricast/internal/models"
)

// ErrorHandler returns the app-level error handler. Handlers normally map
// service errors themselves; this catches fiber errors (404 rewrites, body
// limits) and anything that escaped.
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		logger.Error("Request error",
			"path", c.Path(),
			"method", c.Method(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ERROR",
				Message: message,
			},
		})
	}
}
