package engine

import (
	"slices"

	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
)

// PositionStore is a Store of positions that keeps a spatial index
// consistent with component data. Several entities may share a tile (an item under a monster).
type PositionStore struct {
	*Store[component.PositionComponent]
	spatial map[core.Point][]core.Entity
}

// NewPositionStore creates a new position store with spatial indexing
func NewPositionStore() *PositionStore {
	return &PositionStore{
		Store:   NewStore[component.PositionComponent](),
		spatial: make(map[core.Point][]core.Entity),
	}
}

// Set moves or places an entity, updating the spatial index
func (ps *PositionStore) Set(e core.Entity, pos component.PositionComponent) {
	if old, exists := ps.Store.Get(e); exists {
		ps.unindex(e, old.Point)
	}
	ps.Store.Set(e, pos)
	ps.spatial[pos.Point] = append(ps.spatial[pos.Point], e)
}

// Move is shorthand for Set with a bare point
func (ps *PositionStore) Move(e core.Entity, p core.Point) {
	ps.Set(e, component.PositionComponent{Point: p})
}

// Remove drops the entity from the store and spatial index
func (ps *PositionStore) Remove(e core.Entity) {
	if pos, exists := ps.Store.Get(e); exists {
		ps.unindex(e, pos.Point)
	}
	ps.Store.Remove(e)
}

// Clear empties store and index
func (ps *PositionStore) Clear() {
	ps.Store.Clear()
	ps.spatial = make(map[core.Point][]core.Entity)
}

// EntitiesAt returns entities on p in placement order
func (ps *PositionStore) EntitiesAt(p core.Point) []core.Entity {
	src := ps.spatial[p]
	out := make([]core.Entity, len(src))
	copy(out, src)
	return out
}

// At returns the position of e as a bare point
func (ps *PositionStore) At(e core.Entity) (core.Point, bool) {
	pos, ok := ps.Store.Get(e)
	return pos.Point, ok
}

func (ps *PositionStore) unindex(e core.Entity, p core.Point) {
	row := ps.spatial[p]
	if i := slices.Index(row, e); i >= 0 {
		row = slices.Delete(row, i, i+1)
	}
	if len(row) == 0 {
		delete(ps.spatial, p)
		return
	}
	ps.spatial[p] = row
}
