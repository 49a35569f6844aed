package services

import "github.com/gofiber/fiber/v2"

// APIError carries the HTTP status a service failure maps to, so handlers
// can build the {message, code, data} envelope without string matching.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

var (
	ErrEmailExists        = newAPIError(fiber.StatusConflict, "Email already exists")
	ErrInvalidCredentials = newAPIError(fiber.StatusUnauthorized, "Invalid credentials")
	ErrAdminOnly          = newAPIError(fiber.StatusForbidden, "Only admins can delete orders")
	ErrOrderNotFound      = newAPIError(fiber.StatusNotFound, "Order not found")
	ErrInvalidOrderID     = newAPIError(fiber.StatusBadRequest, "Invalid order ID")
	ErrInvalidTimeframe   = newAPIError(fiber.StatusBadRequest, "Invalid timeframe")
)
