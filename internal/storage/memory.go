package storage

import (
	"sync"

	"github.com/vovakirdan/skydodge/internal/core"
)

// MemoryStore is an in-process IntStore used when no database is available.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// GetInt returns the value for key or ErrNotFound.
func (m *MemoryStore) GetInt(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

// SetInt stores value under key.
func (m *MemoryStore) SetInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// MaxInt raises the value under key to value unless a larger one is stored.
func (m *MemoryStore) MaxInt(key string, value int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.values[key]; ok && cur >= value {
		return cur, nil
	}
	m.values[key] = value
	return value, nil
}

var _ core.MaxIntStore = (*MemoryStore)(nil)
