package main

import (
	"time"

	"pantry-backend/controllers"
	"pantry-backend/routes"
	"pantry-backend/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// newApp собирает Fiber приложение с маршрутами товаров и WebSocket
func newApp(store *services.Store, hub *services.Hub, corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
				"code":    code,
			})
		},
	})

	// Middleware
	app.Use(logger.New())

	// CORS настройки
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Настройка маршрутов
	routes.SetupItemRoutes(app, controllers.NewItemController(store))
	if hub != nil {
		routes.SetupRealtimeRoutes(app, hub)
	}

	// Общий health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "Pantry Backend is running",
			"items":     len(store.Items()),
			"timestamp": time.Now().Unix(),
		})
	})

	return app
}
