package serverutils

import (
	"errors"

	"ai-writing-assistant/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON envelope.
// Handlers signal a status with fiber.NewError; anything else is a 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponseWithData(fiber.StatusBadRequest, "Validation failed", validationErr.Fields))
		}

		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": code,
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
