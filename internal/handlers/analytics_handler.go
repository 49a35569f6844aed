package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/nishantj/orderdesk/internal/services"
)

// TotalRevenueHandler reports revenue in the requested timeframe plus the
// change against the comparison window.
func TotalRevenueHandler(c *fiber.Ctx) error {
	stats, err := services.TotalRevenue(c.Query("timeframe"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Total revenue retrieved", stats)
}

// OrderCountHandler reports the order count in the requested timeframe.
func OrderCountHandler(c *fiber.Ctx) error {
	stats, err := services.OrderCount(c.Query("timeframe"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Total order count retrieved", stats)
}

// UniqueCustomersHandler reports distinct customers in the timeframe.
func UniqueCustomersHandler(c *fiber.Ctx) error {
	stats, err := services.UniqueCustomers(c.Query("timeframe"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Unique customers count retrieved", stats)
}

// OrdersByCategoryHandler breaks the timeframe's orders down by category.
// The timeframe is mandatory here; a bad value is a 400.
func OrdersByCategoryHandler(c *fiber.Ctx) error {
	timeframe := c.Query("timeframe")

	rows, err := services.OrdersByCategory(timeframe)
	if err != nil {
		return respondError(c, err)
	}
	message := fmt.Sprintf("Orders by category retrieved for %s", timeframe)
	return respond(c, fiber.StatusOK, message, rows)
}

// RevenueTrendHandler reports per-month revenue across all orders.
func RevenueTrendHandler(c *fiber.Ctx) error {
	rows, err := services.RevenueTrend()
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "Revenue trend retrieved", rows)
}
