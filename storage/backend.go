package storage

import (
	"errors"
	"sync"
)

// ErrQuotaExceeded возвращается, когда значение не помещается в хранилище
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend представляет хранилище ключ-значение для текстовых данных
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryBackend хранит данные в памяти процесса.
// Quota ограничивает суммарный размер значений в байтах, 0 означает без ограничений.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
	Quota  int
}

// NewMemoryBackend создает новое хранилище в памяти
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

// Get возвращает значение по ключу
func (m *MemoryBackend) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set сохраняет значение по ключу с учетом квоты
func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Quota > 0 {
		used := len(value)
		for k, v := range m.values {
			if k != key {
				used += len(v)
			}
		}
		if used > m.Quota {
			return ErrQuotaExceeded
		}
	}

	m.values[key] = value
	return nil
}
