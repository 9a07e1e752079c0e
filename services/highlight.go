package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultHighlightDuration длительность подсветки товара после изменения
const DefaultHighlightDuration = 900 * time.Millisecond

// HighlightPayload представляет payload событий подсветки
type HighlightPayload struct {
	ItemID     string `json:"item_id"`
	DurationMs int64  `json:"duration_ms"`
}

// Highlighter управляет временной подсветкой одного товара.
// Новая подсветка отменяет ожидающее истечение предыдущей.
type Highlighter struct {
	mu        sync.Mutex
	duration  time.Duration
	active    string
	cancel    context.CancelFunc
	publisher Publisher
	logger    zerolog.Logger
}

// NewHighlighter создает планировщик подсветки
func NewHighlighter(duration time.Duration, publisher Publisher, logger zerolog.Logger) *Highlighter {
	if duration <= 0 {
		duration = DefaultHighlightDuration
	}
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &Highlighter{
		duration:  duration,
		publisher: publisher,
		logger:    logger,
	}
}

// Start подсвечивает товар и планирует снятие подсветки
func (h *Highlighter) Start(itemID string) {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.active = itemID
	h.cancel = cancel
	h.mu.Unlock()

	h.logger.Debug().Str("item_id", itemID).Dur("duration", h.duration).Msg("highlight started")
	h.publisher.Broadcast(WSMessage{
		Type:    EventHighlight,
		Payload: HighlightPayload{ItemID: itemID, DurationMs: h.duration.Milliseconds()},
	})

	go h.expire(ctx, cancel, itemID)
}

// expire снимает подсветку, если задача не была отменена
func (h *Highlighter) expire(ctx context.Context, cancel context.CancelFunc, itemID string) {
	defer cancel()

	timer := time.NewTimer(h.duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	h.mu.Lock()
	if ctx.Err() != nil {
		h.mu.Unlock()
		return
	}
	h.active = ""
	h.cancel = nil
	h.mu.Unlock()

	h.publisher.Broadcast(WSMessage{
		Type:    EventHighlightExpired,
		Payload: HighlightPayload{ItemID: itemID},
	})
}

// Active возвращает подсвеченный товар, если он есть
func (h *Highlighter) Active() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active, h.active != ""
}

// Stop отменяет текущую подсветку без события истечения
func (h *Highlighter) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.active = ""
}
