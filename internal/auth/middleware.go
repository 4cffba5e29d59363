package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Spencer4792/jwt-pizza-service/internal/repository"
	apperrors "github.com/Spencer4792/jwt-pizza-service/pkg/util"
)

const (
	principalKey = "auth_principal"
	tokenKey     = "auth_token"
)

// IdentityResolver classifies every inbound request as anonymous or as a
// resolved principal. The Authorization bearer header is the single
// authoritative credential source. Resolution never writes a response;
// rejection is the guards' job at the point of use.
type IdentityResolver struct {
	codec    *TokenCodec
	sessions repository.SessionRepository
	logger   *zap.Logger
}

// NewIdentityResolver constructs the middleware.
func NewIdentityResolver(codec *TokenCodec, sessions repository.SessionRepository, logger *zap.Logger) *IdentityResolver {
	return &IdentityResolver{codec: codec, sessions: sessions, logger: logger}
}

// Handle resolves the caller identity and attaches it to the request
// context. A token is authorizable only when its signature verifies, its
// claims decode, and the session store holds that exact string; any other
// outcome leaves the request anonymous.
func (m *IdentityResolver) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return c.Next()
	}
	token := parts[1]

	claims, err := m.codec.Decode(token)
	if err != nil {
		return c.Next()
	}

	active, err := m.sessions.IsActive(c.UserContext(), token)
	if err != nil {
		// Store unreachable is an internal failure, not a stale token.
		m.logger.Error("session store lookup failed", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	if !active {
		return c.Next()
	}

	c.Locals(principalKey, PrincipalFromClaims(claims))
	c.Locals(tokenKey, token)
	return c.Next()
}

// PrincipalFromContext retrieves the resolved caller; nil means anonymous.
func PrincipalFromContext(c *fiber.Ctx) *Principal {
	if val, ok := c.Locals(principalKey).(*Principal); ok {
		return val
	}
	return nil
}

// TokenFromContext returns the exact encoded token the caller presented.
func TokenFromContext(c *fiber.Ctx) string {
	if val, ok := c.Locals(tokenKey).(string); ok {
		return val
	}
	return ""
}
