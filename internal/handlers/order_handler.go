package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nishantj/orderdesk/internal/models"
	"github.com/nishantj/orderdesk/internal/services"
)

type createOrderRequest struct {
	CustomerName    string  `json:"customerName" validate:"required"`
	ProductName     string  `json:"productName" validate:"required"`
	ProductCategory string  `json:"productCategory" validate:"required"`
	Price           float64 `json:"price" validate:"required,min=1"`
	OrderDate       string  `json:"orderDate" validate:"required"`
}

// parseOrderDate accepts full RFC 3339 timestamps or bare dates.
func parseOrderDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// CreateOrderHandler stores a new order for the logged-in customer.
func CreateOrderHandler(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}
	if err := validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	orderDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"orderDate": "must be an ISO 8601 date",
		})
	}

	creatorEmail, _ := c.Locals("email").(string)
	order, err := services.CreateOrder(models.Order{
		CustomerName: req.CustomerName,
		ProductName:  req.ProductName,
		// single category in the payload, list in the store
		ProductCategory: []string{req.ProductCategory},
		Price:           req.Price,
		OrderDate:       orderDate,
	}, creatorEmail)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusCreated, "Order created successfully", order)
}

// ListAllOrdersHandler returns one page of all orders, newest orderDate
// first. Response is the flat pagination shape, not the envelope.
func ListAllOrdersHandler(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	result, err := services.ListAllOrders(page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ListMyOrdersHandler returns every order created by the logged-in customer.
func ListMyOrdersHandler(c *fiber.Ctx) error {
	creatorEmail, _ := c.Locals("email").(string)

	orders, err := services.ListCustomerOrders(creatorEmail)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Customer orders retrieved", orders)
}

// DeleteOrderHandler removes an order by id. Admin only; the service
// re-checks the role so the rule holds even if route wiring changes.
func DeleteOrderHandler(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	if err := services.DeleteOrder(c.Params("id"), role); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Order deleted successfully", nil)
}
