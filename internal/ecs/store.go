package ecs

// anyStore is the type-erased view World uses for lifecycle operations.
type anyStore interface {
	Remove(e Entity)
	Has(e Entity) bool
	Count() int
}

// QueryableStore extends anyStore with the listing needed to intersect stores.
type QueryableStore interface {
	anyStore
	All() []Entity
}

// Store holds every component of type T, keyed by entity.
// Components are stored by pointer so queries can hand out references that
// stay valid until the component is removed or replaced.
type Store[T any] struct {
	components map[Entity]*T
	entities   []Entity // insertion order, for deterministic iteration
}

// NewStore creates an empty component store for type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]*T),
		entities:   make([]Entity, 0, 16),
	}
}

// Set inserts or replaces e's component.
func (s *Store[T]) Set(e Entity, val T) {
	if existing, ok := s.components[e]; ok {
		*existing = val
		return
	}
	v := val
	s.components[e] = &v
	s.entities = append(s.entities, e)
}

// Get returns a pointer to e's component.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	v, ok := s.components[e]
	return v, ok
}

// Has reports whether e has a component in this store.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes e's component, if any.
func (s *Store[T]) Remove(e Entity) {
	if _, ok := s.components[e]; !ok {
		return
	}
	delete(s.components, e)
	for i, other := range s.entities {
		if other == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// All returns a copy of the entities in this store, in insertion order.
func (s *Store[T]) All() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of components in the store.
func (s *Store[T]) Count() int {
	return len(s.entities)
}
