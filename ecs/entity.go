package ecs

import "unsafe"

// EntityId encodes the archetype ID (upper 32 bits) and the slot index
// inside that archetype (lower 32 bits). Slots are reused after deletion,
// so an id is only meaningful until the entity is deleted.
type EntityId uint64

// NewEntityId creates an EntityId from an archetype ID and slot index
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId extracts the archetype ID from the entity ID
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// eface mirrors the runtime layout of an interface{} so component pointers
// can be pulled out of an `any` without reflection.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

func dataPointer(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}
