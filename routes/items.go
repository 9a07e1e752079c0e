package routes

import (
	"pantry-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupItemRoutes настраивает маршруты для товаров
func SetupItemRoutes(app *fiber.App, itemController *controllers.ItemController) {
	// Группа маршрутов для товаров
	items := app.Group("/api/items")

	// GET /api/items - получить все товары
	items.Get("/", itemController.GetItems)

	// GET /api/items/view - получить список покупок и список запасов
	items.Get("/view", itemController.GetView)

	// POST /api/items - добавить товар
	items.Post("/", itemController.CreateItem)

	// GET /api/items/:id - получить товар по ID
	items.Get("/:id", itemController.GetItem)

	// PUT /api/items/:id/note - изменить заметку
	items.Put("/:id/note", itemController.UpdateNote)

	// POST /api/items/:id/toggle - перевести в следующий статус
	items.Post("/:id/toggle", itemController.ToggleStatus)

	// POST /api/items/:id/bought - отметить купленным
	items.Post("/:id/bought", itemController.MarkBought)

	// PUT /api/items/:id/status - установить статус
	items.Put("/:id/status", itemController.SetStatus)

	// DELETE /api/items/:id - удалить товар
	items.Delete("/:id", itemController.DeleteItem)
}
