package ecs

import (
	"reflect"
	"slices"
	"strings"
)

// Archetype holds every entity that carries exactly one set of component
// types. Each type gets a column; a slot index addresses the same entity
// in all columns.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}
	for idx, typ := range types {
		a.columns[idx] = registry.newColumn(typ)
	}
	return a
}

// spawn appends one entity and returns its slot index. components must
// hold one value (or pointer) for each of the archetype's types.
func (a *Archetype) spawn(components []any) uint32 {
	slot := -1
	for _, comp := range components {
		idx := a.columnIndex(componentType(comp))
		if idx == -1 {
			panic("component type " + componentType(comp).String() + " does not belong to archetype")
		}
		slot = a.columns[idx].Append(comp)
	}
	return uint32(slot)
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	for i, typ := range a.types {
		if typ == t {
			return i
		}
	}
	return -1
}

// component returns a pointer to the entity's component of type t, or nil.
func (a *Archetype) component(index uint32, t reflect.Type) any {
	idx := a.columnIndex(t)
	if idx == -1 {
		return nil
	}
	return a.columns[idx].Get(int(index))
}

func (a *Archetype) delete(index uint32) bool {
	if len(a.columns) == 0 || !a.columns[0].Has(int(index)) {
		return false
	}
	for _, c := range a.columns {
		c.Delete(int(index))
	}
	return true
}

// HasComponent reports whether the archetype stores component type t.
func (a *Archetype) HasComponent(t reflect.Type) bool {
	return slices.Contains(a.types, t)
}

// ID returns the archetype's identifier, the upper half of its entity ids.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the archetype's component types, sorted by name.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities in the archetype.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

func (a *Archetype) String() string {
	names := make([]string, len(a.types))
	for i, t := range a.types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// Iter yields the id of every live entity in the archetype.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
