package storage

import (
	"fmt"
	"strings"

	"pantry-backend/models"

	"github.com/goccy/go-json"
)

// DefaultKey ключ, под которым хранится список товаров
const DefaultKey = "pantry.items.v1"

// PersistenceError сообщает о неудачной записи списка.
// Состояние в памяти при этом остается источником истины.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %q: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Codec сериализует список товаров в текстовый блок хранилища
type Codec struct {
	backend Backend
	key     string
}

// NewCodec создает кодек для указанного ключа
func NewCodec(backend Backend, key string) *Codec {
	if key == "" {
		key = DefaultKey
	}
	return &Codec{backend: backend, key: key}
}

// Key возвращает ключ хранилища
func (c *Codec) Key() string {
	return c.key
}

// Load читает список товаров. Отсутствующие или поврежденные данные дают пустой список.
func (c *Codec) Load() []models.Item {
	raw, ok, err := c.backend.Get(c.key)
	if err != nil || !ok {
		return []models.Item{}
	}
	return Decode(raw)
}

// Save записывает весь список товаров
func (c *Codec) Save(items []models.Item) error {
	if items == nil {
		items = []models.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return &PersistenceError{Key: c.key, Err: err}
	}
	if err := c.backend.Set(c.key, string(data)); err != nil {
		return &PersistenceError{Key: c.key, Err: err}
	}
	return nil
}

// Decode разбирает текстовый блок. Имена обрезаются по пробелам, элементы без id
// или имени отбрасываются, неизвестный статус заменяется на ENOUGH,
// повторный id или имя пропускается.
func Decode(raw string) []models.Item {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return []models.Item{}
	}

	items := make([]models.Item, 0, len(elements))
	seen := make(map[string]struct{}, len(elements))
	names := make(map[string]struct{}, len(elements))
	for _, element := range elements {
		var item models.Item
		if err := json.Unmarshal(element, &item); err != nil {
			continue
		}
		item.Name = strings.TrimSpace(item.Name)
		if item.ID == "" || item.Name == "" {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if _, dup := names[item.Name]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		names[item.Name] = struct{}{}

		if !item.Status.Valid() {
			item.Status = models.StatusEnough
		}
		if item.UpdatedAt < item.CreatedAt {
			item.UpdatedAt = item.CreatedAt
		}
		items = append(items, item)
	}
	return items
}
