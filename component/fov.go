package component

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-crawler/core"
)

// FieldOfViewComponent caches the tiles an entity can see
// Dirty is raised by anything that moves the entity or changes the map, cleared on recompute
type FieldOfViewComponent struct {
	Visible mapset.Set[core.Point]
	Radius  int
	Dirty   bool
}

// NewFieldOfView returns a dirty, empty view of the given radius
func NewFieldOfView(radius int) FieldOfViewComponent {
	return FieldOfViewComponent{
		Visible: mapset.New[core.Point](),
		Radius:  radius,
		Dirty:   true,
	}
}

// Sees reports whether p is currently visible
func (f FieldOfViewComponent) Sees(p core.Point) bool {
	return f.Visible.Has(p)
}
