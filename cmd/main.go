package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/nishantj/orderdesk/internal/config"
	"github.com/nishantj/orderdesk/internal/db"
	"github.com/nishantj/orderdesk/internal/handlers"
	"github.com/nishantj/orderdesk/internal/middleware"
)

func main() {
	config.Load()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	database := db.ConnectMongoDB(config.MongoURI(), config.DBName())
	db.EnsureIndexes(database)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth Routes
	auth := app.Group("/auth")
	auth.Post("/register", handlers.RegisterHandler)
	auth.Post("/login", handlers.LoginHandler)

	// Order routes. The required role for each operation is declared right
	// here, next to its handler.
	orders := app.Group("/orders", middleware.AuthMiddleware)
	orders.Post("/", middleware.RequireRole("customer"), handlers.CreateOrderHandler)
	orders.Get("/all", middleware.RequireRole("admin"), handlers.ListAllOrdersHandler)
	orders.Get("/my-orders", middleware.RequireRole("customer"), handlers.ListMyOrdersHandler)
	orders.Delete("/:id", middleware.RequireRole("admin"), handlers.DeleteOrderHandler)

	// Analytics routes (admin only)
	analytics := orders.Group("/analytics", middleware.RequireRole("admin"))
	analytics.Get("/revenue", handlers.TotalRevenueHandler)
	analytics.Get("/orders-count", handlers.OrderCountHandler)
	analytics.Get("/customers-count", handlers.UniqueCustomersHandler)
	analytics.Get("/orders-by-category", handlers.OrdersByCategoryHandler)
	analytics.Get("/revenue-trend", handlers.RevenueTrendHandler)

	log.Fatal(app.Listen(":" + config.Port()))
}
