package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nishantj/orderdesk/internal/services"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin customer"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterHandler creates a new user account.
func RegisterHandler(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user, err := services.RegisterUser(req.Email, req.Password, req.Role)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusCreated, "User registered successfully", user.Public())
}

// LoginHandler authenticates a user and returns a bearer token.
func LoginHandler(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	token, user, err := services.LoginUser(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}
