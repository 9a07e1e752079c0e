package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"pantry-backend/models"
	"pantry-backend/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Confirmer подтверждает удаление товара
type Confirmer interface {
	Confirm(item models.Item) bool
}

// ConfirmFunc позволяет использовать функцию как Confirmer
type ConfirmFunc func(item models.Item) bool

// Confirm вызывает функцию подтверждения
func (f ConfirmFunc) Confirm(item models.Item) bool {
	return f(item)
}

// TransitionEvent описывает изменение статуса товара
type TransitionEvent struct {
	ItemID          string        `json:"item_id"`
	From            models.Status `json:"from"`
	To              models.Status `json:"to"`
	EnteredShopping bool          `json:"entered_shopping"`
	Highlight       bool          `json:"highlight"`
}

// ChangePayload представляет payload события изменения списка
type ChangePayload struct {
	Action string `json:"action"`
	ItemID string `json:"item_id,omitempty"`
	Total  int    `json:"total"`
}

// WarningPayload представляет payload предупреждения о сохранении
type WarningPayload struct {
	Message string `json:"message"`
}

// Store владеет списком товаров и сохраняет его после каждого изменения
type Store struct {
	mu          sync.Mutex
	items       []models.Item
	codec       *storage.Codec
	highlighter *Highlighter
	publisher   Publisher
	logger      zerolog.Logger
	locale      language.Tag
	now         func() time.Time
	newID       func() string
}

// StoreOption настраивает Store
type StoreOption func(*Store)

// WithHighlighter задает планировщик подсветки
func WithHighlighter(h *Highlighter) StoreOption {
	return func(s *Store) { s.highlighter = h }
}

// WithPublisher задает получателя событий
func WithPublisher(p Publisher) StoreOption {
	return func(s *Store) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLogger задает логгер
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithLocale задает язык сортировки
func WithLocale(tag language.Tag) StoreOption {
	return func(s *Store) { s.locale = tag }
}

// WithClock задает источник времени
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator задает генератор идентификаторов
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) { s.newID = newID }
}

// NewStore загружает сохраненный список и создает хранилище товаров
func NewStore(codec *storage.Codec, opts ...StoreOption) *Store {
	s := &Store{
		codec:     codec,
		publisher: nopPublisher{},
		logger:    zerolog.Nop(),
		locale:    language.English,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.items = codec.Load()
	s.logger.Info().Int("items", len(s.items)).Str("key", codec.Key()).Msg("inventory loaded")
	return s
}

// Items возвращает копию списка в порядке хранения
func (s *Store) Items() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneItems(s.items)
}

// Get возвращает товар по ID
func (s *Store) Get(id string) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexLocked(id); idx >= 0 {
		return s.items[idx], true
	}
	return models.Item{}, false
}

// View вычисляет производные списки по текущему состоянию
func (s *Store) View(query string) View {
	return Derive(s.Items(), query, s.locale)
}

// Add добавляет новый товар в начало списка и возвращает его ID.
// Ошибка *storage.PersistenceError не отменяет добавление.
func (s *Store) Add(name, note string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.Name == trimmed {
			return "", fmt.Errorf("%w: %q", ErrDuplicateName, trimmed)
		}
	}

	now := s.now().UnixMilli()
	item := models.Item{
		ID:        s.newID(),
		Name:      trimmed,
		Note:      note,
		Status:    models.StatusEnough,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.items = append([]models.Item{item}, s.items...)

	return item.ID, s.persistLocked("add", item.ID)
}

// Remove удаляет товар после подтверждения. Отсутствующий товар игнорируется.
func (s *Store) Remove(id string, confirmer Confirmer) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return false, nil
	}
	if confirmer == nil || !confirmer.Confirm(s.items[idx]) {
		return false, ErrNotConfirmed
	}

	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	return true, s.persistLocked("remove", id)
}

// UpdateNote заменяет заметку товара
func (s *Store) UpdateNote(id, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return false, nil
	}

	s.items[idx].Note = text
	s.items[idx].Touch(s.now())
	return true, s.persistLocked("note", id)
}

// ToggleStatus переводит товар в следующий статус цикла
func (s *Store) ToggleStatus(id string) (TransitionEvent, bool, error) {
	return s.transition(id, "toggle", func(current models.Status) (models.Status, bool) {
		return models.NextStatus(current), false
	})
}

// MarkBought возвращает товару статус ENOUGH и всегда подсвечивает его
func (s *Store) MarkBought(id string) (TransitionEvent, bool, error) {
	return s.transition(id, "bought", func(models.Status) (models.Status, bool) {
		return models.StatusEnough, true
	})
}

// SetStatus устанавливает статус напрямую
func (s *Store) SetStatus(id string, status models.Status) (TransitionEvent, bool, error) {
	if !status.Valid() {
		return TransitionEvent{}, false, ErrInvalidStatus
	}
	return s.transition(id, "status", func(models.Status) (models.Status, bool) {
		return status, false
	})
}

// transition применяет изменение статуса, сохраняет список и запускает подсветку
func (s *Store) transition(id, action string, next func(models.Status) (models.Status, bool)) (TransitionEvent, bool, error) {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return TransitionEvent{}, false, nil
	}

	item := &s.items[idx]
	to, force := next(item.Status)
	event := TransitionEvent{
		ItemID: id,
		From:   item.Status,
		To:     to,
	}
	event.EnteredShopping = !event.From.NeedsShopping() && to.NeedsShopping()
	event.Highlight = force || event.EnteredShopping

	item.Status = to
	item.Touch(s.now())
	err := s.persistLocked(action, id)
	s.mu.Unlock()

	if event.Highlight && s.highlighter != nil {
		s.highlighter.Start(id)
	}
	return event, true, err
}

func (s *Store) indexLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked сохраняет весь список. Ошибка не откатывает состояние в памяти.
func (s *Store) persistLocked(action, id string) error {
	err := s.codec.Save(s.items)
	if err != nil {
		s.logger.Warn().Err(err).Str("action", action).Str("item_id", id).Msg("inventory not persisted")
		s.publisher.Broadcast(WSMessage{
			Type:    EventInventoryWarning,
			Payload: WarningPayload{Message: "Changes could not be saved and will be lost on restart"},
		})
	}

	s.publisher.Broadcast(WSMessage{
		Type:    EventInventoryChanged,
		Payload: ChangePayload{Action: action, ItemID: id, Total: len(s.items)},
	})
	return err
}
