package store

import (
	"context"
	"sync"
)

type memorySessionStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemorySessionStorage returns a [SessionStorage] that keeps items in
// process memory for the lifetime of the value.
func NewMemorySessionStorage() SessionStorage {
	return &memorySessionStorage{items: make(map[string]string)}
}

func (m *memorySessionStorage) GetItem(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return value, nil
}

func (m *memorySessionStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

func (m *memorySessionStorage) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *memorySessionStorage) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.items)
	return nil
}
