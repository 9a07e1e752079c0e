package routes

import (
	"pantry-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRealtimeRoutes настраивает WebSocket маршрут для событий инвентаря
func SetupRealtimeRoutes(app *fiber.App, hub *services.Hub) {
	// Пропускаем только запросы на обновление соединения
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// GET /ws - подписка на подсветку и изменения списка
	app.Get("/ws", websocket.New(hub.HandleWebSocket))
}
