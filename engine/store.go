package engine

import (
	"slices"

	"github.com/lixenwraith/lobber/core"
)

// AnyStore is the type-erased view World uses to tear entities down
type AnyStore interface {
	RemoveMany(entities []core.Entity)
}

// Store holds one component type densely, in insertion order
// Not synchronized: only the game goroutine touches it
type Store[T any] struct {
	index map[core.Entity]int
	ids   []core.Entity
	vals  []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: make(map[core.Entity]int),
		ids:   make([]core.Entity, 0, 64),
		vals:  make([]T, 0, 64),
	}
}

// Set adds or overwrites the component of e; an overwrite keeps e's position
func (s *Store[T]) Set(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.vals[i] = val
		return
	}
	s.index[e] = len(s.ids)
	s.ids = append(s.ids, e)
	s.vals = append(s.vals, val)
}

// Get returns a copy
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.vals[i], true
}

// Update mutates the component of e in place, false if absent
func (s *Store[T]) Update(e core.Entity, fn func(*T)) bool {
	i, ok := s.index[e]
	if ok {
		fn(&s.vals[i])
	}
	return ok
}

// Each visits components oldest first; fn must not add or remove entries
func (s *Store[T]) Each(fn func(e core.Entity, val *T)) {
	for i, e := range s.ids {
		fn(e, &s.vals[i])
	}
}

// RemoveMany drops every listed entity with a single compaction
func (s *Store[T]) RemoveMany(entities []core.Entity) {
	first := len(s.ids)
	for _, e := range entities {
		if i, ok := s.index[e]; ok {
			first = min(first, i)
			delete(s.index, e)
		}
	}
	if first == len(s.ids) {
		return
	}

	w := first
	for r := first; r < len(s.ids); r++ {
		if _, live := s.index[s.ids[r]]; !live {
			continue
		}
		s.ids[w], s.vals[w] = s.ids[r], s.vals[r]
		w++
	}
	clear(s.vals[w:])
	s.ids, s.vals = s.ids[:w], s.vals[:w]
	s.reindex(first)
}

func (s *Store[T]) reindex(from int) {
	for i := from; i < len(s.ids); i++ {
		s.index[s.ids[i]] = i
	}
}

func (s *Store[T]) has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Entities returns a copy of the ids, oldest first
func (s *Store[T]) Entities() []core.Entity {
	return slices.Clone(s.ids)
}

func (s *Store[T]) Len() int { return len(s.ids) }
