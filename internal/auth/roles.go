package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/domain"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// RequireRole allows the request to proceed only when the identity
// resolved by AuthMiddleware carries the required role. Identity is
// read exclusively from the request context, never from the payload.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if identity.Role != required {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
