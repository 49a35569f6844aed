package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nishantj/orderdesk/internal/services"
)

var validate = validator.New()

// respond writes the uniform {message, code, data} envelope.
func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"code":    status,
		"data":    data,
	})
}

// respondError maps a service failure onto the envelope. Typed APIErrors
// keep their status; anything else is a 500.
func respondError(c *fiber.Ctx, err error) error {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		return respond(c, apiErr.Code, apiErr.Message, nil)
	}
	log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
	return respond(c, fiber.StatusInternalServerError, "Internal server error", nil)
}

// respondValidation reports field-level validation failures as a 400 with a
// field → message map in data.
func respondValidation(c *fiber.Ctx, err error) error {
	return respond(c, fiber.StatusBadRequest, "Validation failed", validationErrors(err))
}

func validationErrors(err error) map[string]string {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		fields[fe.Field()] = validationMessage(fe)
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
