package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/vi-crawler/core"
)

// Store is a generic container for a specific component type T
// Iteration follows insertion order so systems visit entities deterministically
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity // Entities holding this component, in insertion order
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// MustGet retrieves a component or panics with a MissingComponentError
func (s *Store[T]) MustGet(e core.Entity, name string) T {
	val, ok := s.Get(e)
	core.MustHave(ok, e, name)
	return val
}

// Remove deletes the component of an entity, preserving order of the rest
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// First returns the earliest inserted entity, used for singleton tags like the player
func (s *Store[T]) First() (core.Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entities) == 0 {
		return core.NullEntity, false
	}
	return s.entities[0], true
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
