package core

import "fmt"

// Entity is a generational identifier: low 32 bits index the arena slot, high 32 bits hold the
// slot generation. A destroyed entity's slot is reused with a bumped generation, so stale handles
// compare unequal to the new occupant. Zero is the null entity.
type Entity uint64

// NullEntity never refers to a live entity
const NullEntity Entity = 0

// NewEntity packs index and generation
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	if e == NullEntity {
		return "entity(null)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
