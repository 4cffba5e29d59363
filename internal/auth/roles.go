package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Spencer4792/jwt-pizza-service/internal/domain"
)

// Authenticated rejects anonymous callers with 401 before the handler runs.
func Authenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := RequireAuthenticated(PrincipalFromContext(c)); err != nil {
			return err
		}
		return c.Next()
	}
}

// RoleRequired ensures the caller holds the given role membership.
func RoleRequired(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := RequireRole(PrincipalFromContext(c), role); err != nil {
			return err
		}
		return c.Next()
	}
}
