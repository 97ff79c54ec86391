package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrResourceExists is returned when a resource type is inserted twice.
var ErrResourceExists = errors.New("ecs: resource already inserted")

// InsertResource stores the singleton value for type T. Each type can be
// inserted once; later inserts fail with ErrResourceExists.
func InsertResource[T any](w *World, val *T) error {
	key := reflect.TypeFor[T]()
	if _, ok := w.resources[key]; ok {
		return fmt.Errorf("%w: %s", ErrResourceExists, key)
	}
	w.resources[key] = val
	return nil
}

// FetchResource returns the singleton value for type T.
func FetchResource[T any](w *World) (*T, bool) {
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// MustFetchResource is FetchResource for resources inserted during setup.
// It panics if T was never inserted.
func MustFetchResource[T any](w *World) *T {
	v, ok := FetchResource[T](w)
	if !ok {
		panic(fmt.Sprintf("ecs: resource %s not inserted", reflect.TypeFor[T]()))
	}
	return v
}
