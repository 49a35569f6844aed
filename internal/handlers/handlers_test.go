package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Message string                 `json:"message"`
	Code    int                    `json:"code"`
	Data    map[string]interface{} `json:"data"`
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Post("/auth/register", RegisterHandler)
	app.Post("/auth/login", LoginHandler)
	return app
}

func newOrderApp() *fiber.App {
	app := fiber.New()
	app.Post("/orders", func(c *fiber.Ctx) error {
		c.Locals("email", "customer@example.com")
		c.Locals("role", "customer")
		return c.Next()
	}, CreateOrderHandler)
	return app
}

func TestRegisterValidation(t *testing.T) {
	app := newAuthApp()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"malformed email", `{"email":"nope","password":"securepassword","role":"customer"}`, "Email"},
		{"short password", `{"email":"user@example.com","password":"abc","role":"customer"}`, "Password"},
		{"unknown role", `{"email":"user@example.com","password":"securepassword","role":"root"}`, "Role"},
		{"missing everything", `{}`, "Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := postJSON(t, app, "/auth/register", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Validation failed", env.Message)
			assert.Equal(t, fiber.StatusBadRequest, env.Code)
			assert.Contains(t, env.Data, tt.field)
		})
	}
}

func TestRegisterRejectsUnparseableBody(t *testing.T) {
	app := newAuthApp()

	resp, env := postJSON(t, app, "/auth/register", `{"email": `)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", env.Message)
	assert.Nil(t, env.Data)
}

func TestLoginValidation(t *testing.T) {
	app := newAuthApp()

	resp, env := postJSON(t, app, "/auth/login", `{"email":"user@example.com"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Data, "Password")
}

func TestCreateOrderValidation(t *testing.T) {
	app := newOrderApp()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"price below one", `{"customerName":"John Doe","productName":"Laptop","productCategory":"Electronics","price":0.5,"orderDate":"2024-02-17"}`, "Price"},
		{"missing category", `{"customerName":"John Doe","productName":"Laptop","price":1200,"orderDate":"2024-02-17"}`, "ProductCategory"},
		{"missing customer", `{"productName":"Laptop","productCategory":"Electronics","price":1200,"orderDate":"2024-02-17"}`, "CustomerName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := postJSON(t, app, "/orders", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Validation failed", env.Message)
			assert.Contains(t, env.Data, tt.field)
		})
	}
}

func TestCreateOrderRejectsBadDate(t *testing.T) {
	app := newOrderApp()

	resp, env := postJSON(t, app, "/orders",
		`{"customerName":"John Doe","productName":"Laptop","productCategory":"Electronics","price":1200,"orderDate":"17/02/2024"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Data, "orderDate")
}

func TestParseOrderDate(t *testing.T) {
	t.Run("bare date", func(t *testing.T) {
		got, err := parseOrderDate("2024-02-17")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 17, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("full timestamp", func(t *testing.T) {
		got, err := parseOrderDate("2024-02-17T13:45:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 17, 13, 45, 0, 0, time.UTC), got)
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := parseOrderDate("17/02/2024")
		assert.Error(t, err)
	})
}
