package engine

import (
	"github.com/lixenwraith/vi-crawler/core"
)

// World is the entity arena plus every component store
// Entity slots are recycled with a bumped generation so stale handles never alias a new entity
type World struct {
	generations []uint32 // Slot generation, index 0 reserved for the null entity
	alive       []bool
	free        []uint32
	live        int

	Components ComponentStore
	Positions  *PositionStore

	allStores []AnyStore
}

// NewWorld creates an empty world with all component stores initialized
func NewWorld() *World {
	w := &World{
		generations: make([]uint32, 1, 128),
		alive:       make([]bool, 1, 128),
		Components:  newComponentStore(),
		Positions:   NewPositionStore(),
	}
	w.allStores = append(w.Components.stores(), w.Positions)
	return w
}

// CreateEntity reserves a live entity handle without components
func (w *World) CreateEntity() core.Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}
	w.generations[idx]++
	w.alive[idx] = true
	w.live++
	return core.NewEntity(idx, w.generations[idx])
}

// Alive reports whether e refers to the current occupant of its slot
func (w *World) Alive(e core.Entity) bool {
	idx := e.Index()
	if e == core.NullEntity || int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == e.Generation()
}

// DestroyEntity removes every component of e and frees its slot
// Returns false for stale or null handles
func (w *World) DestroyEntity(e core.Entity) bool {
	if !w.Alive(e) {
		return false
	}
	for _, s := range w.allStores {
		s.Remove(e)
	}
	idx := e.Index()
	w.alive[idx] = false
	w.free = append(w.free, idx)
	w.live--
	return true
}

// Count returns the number of live entities
func (w *World) Count() int {
	return w.live
}

// Entities returns every live entity in slot order
func (w *World) Entities() []core.Entity {
	out := make([]core.Entity, 0, w.live)
	for idx := 1; idx < len(w.generations); idx++ {
		if w.alive[idx] {
			out = append(out, core.NewEntity(uint32(idx), w.generations[idx]))
		}
	}
	return out
}

// Clear destroys every entity; slot generations are kept so old handles stay stale
func (w *World) Clear() {
	for _, e := range w.Entities() {
		w.DestroyEntity(e)
	}
}

// Player returns the player entity
// A world without a player during a tick is a corrupted entity graph
func (w *World) Player() core.Entity {
	e, ok := w.Components.Player.First()
	core.MustHave(ok, core.NullEntity, "Player")
	return e
}

// ActorAt returns the first entity on p holding Health, the blocker for movement and attacks
func (w *World) ActorAt(p core.Point) (core.Entity, bool) {
	for _, e := range w.Positions.EntitiesAt(p) {
		if w.Components.Health.Has(e) {
			return e, true
		}
	}
	return core.NullEntity, false
}

// ItemAt returns the first item lying on p
func (w *World) ItemAt(p core.Point) (core.Entity, bool) {
	for _, e := range w.Positions.EntitiesAt(p) {
		if w.Components.Item.Has(e) {
			return e, true
		}
	}
	return core.NullEntity, false
}

// CarriedBy returns every item whose Carried back-reference names owner, in insertion order
func (w *World) CarriedBy(owner core.Entity) []core.Entity {
	var out []core.Entity
	for _, e := range w.Components.Carried.All() {
		if c, _ := w.Components.Carried.Get(e); c.By == owner {
			out = append(out, e)
		}
	}
	return out
}
