package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gondola-rental/internal/service/auth"
)

const ClaimsContextKey = "claims"

func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		c.Locals(ClaimsContextKey, claims)
		return c.Next()
	}
}

func GetClaims(c *fiber.Ctx) *auth.Claims {
	claims, ok := c.Locals(ClaimsContextKey).(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func GetCurrentUserID(c *fiber.Ctx) uuid.UUID {
	claims := GetClaims(c)
	if claims == nil {
		return uuid.Nil
	}
	return claims.UserID
}
