package middleware

import (
	"inventory/internal/apperrors"
	"inventory/internal/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenVerifier checks a raw token string.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthRequired is a Fiber middleware that lets a request through only when
// header carries a valid token. The header holds the raw token, no scheme.
//
// The verified claims are not stored on the context: any valid token grants
// access to every protected route, regardless of who it was issued to.
func AuthRequired(verifier TokenVerifier, header string, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(header)
		if token == "" {
			return apperrors.Unauthenticated("No token provided")
		}

		if _, err := verifier.Verify(token); err != nil {
			log.Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
			return apperrors.Unauthenticated("Invalid or expired token")
		}

		return c.Next()
	}
}
