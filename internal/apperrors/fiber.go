package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FiberErrorHandler renders every error returned by a handler or middleware
// as {"error": message}. Server side failures are logged with their cause.
func FiberErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		he := MapErrorToHTTP(err)
		if he.StatusCode >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.Status(he.StatusCode).JSON(he.ToErrorResponse())
	}
}
