package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gondola-rental/internal/service/auth"
)

func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return Unauthorized("User not found")
		}

		if !claims.HasRole(requiredRole) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

// RequireSelfOrAdmin guards per-user routes: the caller must be the user named
// by the route parameter or an admin.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return Unauthorized("User not found")
		}

		if claims.Role == auth.RoleAdmin {
			return c.Next()
		}

		target, err := uuid.Parse(c.Params(param))
		if err != nil || target != claims.UserID {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}
