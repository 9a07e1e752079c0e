package controllers

import (
	"errors"

	"pantry-backend/models"
	"pantry-backend/services"
	"pantry-backend/storage"

	"github.com/gofiber/fiber/v2"
)

// ItemController обрабатывает HTTP запросы для товаров
type ItemController struct {
	store *services.Store
}

// NewItemController создает новый контроллер товаров
func NewItemController(store *services.Store) *ItemController {
	return &ItemController{store: store}
}

type createItemRequest struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

type updateNoteRequest struct {
	Note string `json:"note"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// GetItems возвращает все товары в порядке добавления
func (c *ItemController) GetItems(ctx *fiber.Ctx) error {
	items := c.store.Items()
	return ctx.JSON(fiber.Map{
		"items": items,
		"total": len(items),
	})
}

// GetView возвращает список покупок, список запасов и счетчики
func (c *ItemController) GetView(ctx *fiber.Ctx) error {
	return ctx.JSON(c.store.View(ctx.Query("q")))
}

// GetItem возвращает товар по ID
func (c *ItemController) GetItem(ctx *fiber.Ctx) error {
	item, ok := c.store.Get(ctx.Params("id"))
	if !ok {
		return notFound(ctx)
	}
	return ctx.JSON(fiber.Map{
		"item": item,
	})
}

// CreateItem добавляет новый товар
func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {
	var req createItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id, err := c.store.Add(req.Name, req.Note)
	if err != nil && !isPersistenceError(err) {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			status := 400
			if validationErr.Kind == services.ValidationDuplicate {
				status = 409
			}
			return ctx.Status(status).JSON(fiber.Map{
				"error": err.Error(),
				"kind":  validationErr.Kind,
			})
		}
		return err
	}

	item, _ := c.store.Get(id)
	return respond(ctx, 201, fiber.Map{
		"id":   id,
		"item": item,
	}, err)
}

// UpdateNote заменяет заметку товара
func (c *ItemController) UpdateNote(ctx *fiber.Ctx) error {
	var req updateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id := ctx.Params("id")
	ok, err := c.store.UpdateNote(id, req.Note)
	if !ok {
		return notFound(ctx)
	}

	item, _ := c.store.Get(id)
	return respond(ctx, 200, fiber.Map{
		"item": item,
	}, err)
}

// ToggleStatus переводит товар в следующий статус
func (c *ItemController) ToggleStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	event, ok, err := c.store.ToggleStatus(id)
	return c.transitionResponse(ctx, id, event, ok, err)
}

// MarkBought отмечает товар купленным
func (c *ItemController) MarkBought(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	event, ok, err := c.store.MarkBought(id)
	return c.transitionResponse(ctx, id, event, ok, err)
}

// SetStatus устанавливает статус товара напрямую
func (c *ItemController) SetStatus(ctx *fiber.Ctx) error {
	var req setStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	status, valid := models.ParseStatus(req.Status)
	if !valid {
		return ctx.Status(400).JSON(fiber.Map{
			"error": "Status must be one of ENOUGH, LOW, EMPTY",
		})
	}

	id := ctx.Params("id")
	event, ok, err := c.store.SetStatus(id, status)
	return c.transitionResponse(ctx, id, event, ok, err)
}

// DeleteItem удаляет товар после подтверждения
func (c *ItemController) DeleteItem(ctx *fiber.Ctx) error {
	confirmed := ctx.QueryBool("confirm", false)

	removed, err := c.store.Remove(ctx.Params("id"), services.ConfirmFunc(func(models.Item) bool {
		return confirmed
	}))
	if errors.Is(err, services.ErrNotConfirmed) {
		return ctx.Status(428).JSON(fiber.Map{
			"error": "Removal must be confirmed with ?confirm=true",
		})
	}
	if !removed {
		return notFound(ctx)
	}

	return respond(ctx, 200, fiber.Map{
		"message": "Item removed successfully",
	}, err)
}

func (c *ItemController) transitionResponse(ctx *fiber.Ctx, id string, event services.TransitionEvent, ok bool, err error) error {
	if !ok {
		return notFound(ctx)
	}
	item, _ := c.store.Get(id)
	return respond(ctx, 200, fiber.Map{
		"event": event,
		"item":  item,
	}, err)
}

// respond отправляет ответ, добавляя предупреждение, если изменения не сохранились
func respond(ctx *fiber.Ctx, status int, body fiber.Map, err error) error {
	if err != nil {
		if !isPersistenceError(err) {
			return err
		}
		body["warning"] = "Changes could not be saved and will be lost on restart"
	}
	return ctx.Status(status).JSON(body)
}

func isPersistenceError(err error) bool {
	var persistErr *storage.PersistenceError
	return errors.As(err, &persistErr)
}

func notFound(ctx *fiber.Ctx) error {
	return ctx.Status(404).JSON(fiber.Map{
		"error": "Item not found",
	})
}
