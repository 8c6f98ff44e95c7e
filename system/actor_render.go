package system

import (
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
	"github.com/lixenwraith/vi-crawler/render"
)

// ActorRenderSystem draws positioned entities the player can see
// Items go first so actors standing on them stay on top
type ActorRenderSystem struct{}

// NewActorRenderSystem creates the actors layer renderer
func NewActorRenderSystem() engine.System {
	return &ActorRenderSystem{}
}

func (s *ActorRenderSystem) Name() string {
	return "actor_render"
}

func (s *ActorRenderSystem) Priority() int {
	return parameter.PriorityActorRender
}

func (s *ActorRenderSystem) Update(w *engine.World, res *engine.Resources) {
	cam := res.Camera
	if cam == nil {
		return
	}
	view := playerView(w)

	var actors []core.Entity
	for _, e := range w.Components.Render.All() {
		if w.Components.Item.Has(e) {
			s.draw(w, res, view.Sees, e)
			continue
		}
		actors = append(actors, e)
	}
	for _, e := range actors {
		s.draw(w, res, view.Sees, e)
	}
}

func (s *ActorRenderSystem) draw(w *engine.World, res *engine.Resources, sees func(core.Point) bool, e core.Entity) {
	pos, ok := w.Positions.At(e)
	if !ok || !sees(pos) || !res.Camera.Contains(pos) {
		return
	}
	r, _ := w.Components.Render.Get(e)
	res.Draw.Set(render.LayerActors, res.Camera.ToScreen(pos), r.Fg, r.Bg, r.Glyph)
}
