package middleware

import (
	"log"
	"strings"

	"student-platform/models"

	"github.com/gofiber/fiber/v2"
)

// TokenValidator resolves a bearer token to a user. Implemented by
// services.AuthService.
type TokenValidator interface {
	ValidateSessionToken(token string) (*models.User, error)
}

// UserContextMiddleware validates the Bearer token and attaches the user to
// the request context. No token, bad token, expired token — all 401; we never
// fall through to a default identity.
func UserContextMiddleware(auth TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authorization header",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := auth.ValidateSessionToken(token)
		if err != nil {
			log.Printf("[AUTH] rejected token on %s: %v", c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired session token",
			})
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireStaff gates admin routes. Must run after UserContextMiddleware.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsStaff() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin or manager role required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by UserContextMiddleware,
// or nil outside a secured route.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
