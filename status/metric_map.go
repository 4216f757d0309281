package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap lazily allocates one metric per key
// Callers cache the returned pointer; only registration takes the lock
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.items[key]
	if !ok {
		p = new(T)
		m.items[key] = p
	}
	return p
}

// Lookup returns the metric only if key was registered
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[key]
	return p, ok
}

// Keys returns registered keys sorted
func (m *MetricMap[T]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.items))
}

func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
