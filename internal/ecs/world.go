// Package ecs is a minimal entity/component store: typed component stores,
// join queries across them, and insert-once resources.
//
// The store is a data bus only. It has no scheduler; callers run their
// systems in whatever order they choose, one tick at a time.
package ecs

import "reflect"

// Entity identifies a game object. The zero Entity is never issued.
type Entity uint32

// World owns all entities, component stores and resources.
// A World is not safe for concurrent use.
type World struct {
	next      Entity
	alive     map[Entity]struct{}
	stores    map[reflect.Type]anyStore
	resources map[reflect.Type]any
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		alive:     make(map[Entity]struct{}),
		stores:    make(map[reflect.Type]anyStore),
		resources: make(map[reflect.Type]any),
	}
}

// NewEntity allocates a fresh entity with no components.
func (w *World) NewEntity() Entity {
	w.next++
	w.alive[w.next] = struct{}{}
	return w.next
}

// Alive reports whether e was issued and not destroyed.
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.alive)
}

// Destroy removes e and every component attached to it.
func (w *World) Destroy(e Entity) {
	if !w.Alive(e) {
		return
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	delete(w.alive, e)
}

// GetStore returns the store for component type T, creating it on first use.
func GetStore[T any](w *World) *Store[T] {
	key := reflect.TypeFor[T]()
	if s, ok := w.stores[key]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[key] = s
	return s
}

// Attach sets component T on e, replacing any previous value.
// It panics if e is not alive.
func Attach[T any](w *World, e Entity, val T) {
	if !w.Alive(e) {
		panic("ecs: attach to dead entity")
	}
	GetStore[T](w).Set(e, val)
}

// Get returns a pointer to e's component T.
func Get[T any](w *World, e Entity) (*T, bool) {
	return GetStore[T](w).Get(e)
}

// Has reports whether e has component T.
func Has[T any](w *World, e Entity) bool {
	return GetStore[T](w).Has(e)
}
