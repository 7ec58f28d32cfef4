package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/domain"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

const identityKey = "auth_identity"

// AuthMiddleware validates bearer tokens and resolves identities.
type AuthMiddleware struct {
	tokens      *TokenManager
	credentials *CredentialStore
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, credentials *CredentialStore) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, credentials: credentials}
}

// Handle enforces authentication for protected routes. The verified
// subject must resolve to a registered credential; a token for an
// unknown user is rejected rather than passed through without an
// identity.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := m.tokens.VerifyToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	cred, ok := m.credentials.Lookup(claims.Username)
	if !ok {
		return apperrors.NewUnauthorized("unknown subject")
	}

	c.Locals(identityKey, &domain.Identity{Username: cred.Username, Role: cred.Role})
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok
}
