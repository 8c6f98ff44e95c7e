package system

import (
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
	"github.com/lixenwraith/vi-crawler/visibility"
)

// FOVSystem recomputes dirty fields of view; the player's view reveals map tiles
type FOVSystem struct{}

// NewFOVSystem creates the visibility system
func NewFOVSystem() engine.System {
	return &FOVSystem{}
}

func (s *FOVSystem) Name() string {
	return "fov"
}

func (s *FOVSystem) Priority() int {
	return parameter.PriorityFOV
}

func (s *FOVSystem) Update(w *engine.World, res *engine.Resources) {
	for _, e := range w.Components.FOV.All() {
		fov, _ := w.Components.FOV.Get(e)
		if !fov.Dirty {
			continue
		}
		pos, ok := w.Positions.At(e)
		core.MustHave(ok, e, "Position")

		fov.Visible = visibility.Compute(res.Map, pos, fov.Radius)
		fov.Dirty = false
		w.Components.FOV.Set(e, fov)

		if w.Components.Player.Has(e) {
			fov.Visible.Each(func(p core.Point) {
				res.Map.Reveal(p)
			})
		}
	}
}
