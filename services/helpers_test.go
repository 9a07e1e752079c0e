package services

import (
	"fmt"
	"sync"
	"time"

	"pantry-backend/models"
	"pantry-backend/storage"

	"github.com/rs/zerolog"
)

// recordingPublisher запоминает разосланные события
type recordingPublisher struct {
	mu       sync.Mutex
	messages []WSMessage
}

func (p *recordingPublisher) Broadcast(message WSMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.messages))
	for _, m := range p.messages {
		out = append(out, m.Type)
	}
	return out
}

func (p *recordingPublisher) count(eventType string) int {
	n := 0
	for _, t := range p.types() {
		if t == eventType {
			n++
		}
	}
	return n
}

// fakeClock возвращает время, растущее на шаг при каждом вызове
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1_700_000_000_000), step: time.Millisecond}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

// sequentialIDs выдает предсказуемые идентификаторы
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("item-%d", n)
	}
}

func newTestStore(backend storage.Backend, opts ...StoreOption) *Store {
	base := []StoreOption{
		WithClock(newFakeClock().Now),
		WithIDGenerator(sequentialIDs()),
	}
	return NewStore(storage.NewCodec(backend, storage.DefaultKey), append(base, opts...)...)
}

var confirmAll = ConfirmFunc(func(_ models.Item) bool { return true })

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func names(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func newMemory() *storage.MemoryBackend {
	return storage.NewMemoryBackend()
}
