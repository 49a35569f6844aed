package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole returns a guard for routes restricted to a single role. The
// required role is declared at route registration, next to the handler it
// protects. An empty requirement admits any authenticated principal.
//
// Missing principal and role mismatch are both Forbidden: by the time this
// guard runs, AuthMiddleware has already rejected unauthenticated requests,
// so an absent principal means a wiring mistake, not a bad token.
func RequireRole(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return forbidden(c, "User not found in request. Ensure JWT is valid.")
		}

		if required != "" && role != required {
			return forbidden(c, "Access Denied")
		}

		return c.Next()
	}
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": message,
		"code":    fiber.StatusForbidden,
		"data":    nil,
	})
}
