package ecs

import "iter"

// Query is a View whose matches are snapshotted once per frame. The
// Scheduler calls Execute before the owning system runs; Iter then walks
// the snapshot. Include an EntityId field in T to get ids back.
type Query[T any] struct {
	view               *View[T]
	storage            *Storage
	cachedArchetypes   []*Archetype
	lastArchetypeCount int

	cached     []T
	cacheValid bool
}

// NewQuery creates a Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and drops any cached state. The
// Scheduler calls it when a system is registered.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
	q.cached = nil
	q.cacheValid = false
}

// Execute rebuilds the snapshot of matching entities.
func (q *Query[T]) Execute() {
	if n := len(q.storage.archetypes); n != q.lastArchetypeCount {
		q.cachedArchetypes = q.cachedArchetypes[:0]
		for _, archetype := range q.storage.archetypes {
			if q.view.matchesArchetype(archetype) {
				q.cachedArchetypes = append(q.cachedArchetypes, archetype)
			}
		}
		q.lastArchetypeCount = n
	}

	q.cached = q.cached[:0]
	for _, archetype := range q.cachedArchetypes {
		for _, item := range q.view.iterArchetype(archetype) {
			q.cached = append(q.cached, item)
		}
	}
	q.cacheValid = true
}

// Iter yields the snapshot taken by the last Execute.
// Panics if Execute has never been called.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}
	return func(yield func(T) bool) {
		for i := range q.cached {
			if !yield(q.cached[i]) {
				return
			}
		}
	}
}

// Len returns the number of entities in the snapshot.
func (q *Query[T]) Len() int {
	return len(q.cached)
}
