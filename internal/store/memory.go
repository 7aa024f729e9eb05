package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store backend. It is the default for development
// and tests. Values returns records in insertion order.
type Memory[T any] struct {
	mu    sync.RWMutex
	recs  map[string]T
	order []string
}

// NewMemory creates an empty in-memory store.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{recs: make(map[string]T)}
}

func (m *Memory[T]) Get(_ context.Context, id string) (T, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.recs[id]
	return rec, ok, nil
}

func (m *Memory[T]) Insert(_ context.Context, id string, rec T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.recs[id]; !exists {
		m.order = append(m.order, id)
	}
	m.recs[id] = rec
	return nil
}

func (m *Memory[T]) Remove(_ context.Context, id string) (T, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	delete(m.recs, id)
	for i, key := range m.order {
		if key == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return rec, true, nil
}

func (m *Memory[T]) Values(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.recs[id])
	}
	return out, nil
}

// Len reports the number of records. Used by tests to assert cardinality.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.recs)
}
