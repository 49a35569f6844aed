package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nishantj/orderdesk/internal/config"
)

// AuthMiddleware validates the bearer token and stores the principal
// (email + role) in the request locals. Invalid, expired or missing tokens
// never reach a handler.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return unauthorized(c, "Missing token")
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		return unauthorized(c, "Invalid token format")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.JWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return unauthorized(c, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthorized(c, "Invalid token claims")
	}

	email, emailExists := claims["email"].(string)
	role, roleExists := claims["role"].(string)
	if !emailExists || !roleExists {
		return unauthorized(c, "Invalid token payload")
	}

	c.Locals("email", email)
	c.Locals("role", role)

	return c.Next()
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
		"code":    fiber.StatusUnauthorized,
		"data":    nil,
	})
}
