package ecs

import "reflect"

// Singleton gives a system direct access to a world-wide value that is
// not attached to any entity: configuration, input state, the camera.
type Singleton[T any] struct {
	storage *Storage
	typ     reflect.Type
}

// NewSingleton returns an accessor for T, storing initializer[0] (or the
// zero value) first if T is not in storage yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.getSingletonEntry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor to storage. Called by the Scheduler.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.typ = reflect.TypeFor[T]()
}

// Get returns the stored value, or nil if T has not been added.
func (s *Singleton[T]) Get() *T {
	if s.storage == nil {
		return nil
	}
	entry := s.storage.getSingletonEntry(s.typ)
	if entry == nil {
		return nil
	}
	return (*T)(entry.dataPtr)
}

// Exists reports whether T is currently stored.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
