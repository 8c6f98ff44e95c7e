package system

import (
	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/dungeon"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
	"github.com/lixenwraith/vi-crawler/render"
)

// MapRenderSystem draws tiles in the camera viewport
// Visible tiles render at full colour, revealed tiles dimmed, the rest not at all
type MapRenderSystem struct{}

// NewMapRenderSystem creates the map layer renderer
func NewMapRenderSystem() engine.System {
	return &MapRenderSystem{}
}

func (s *MapRenderSystem) Name() string {
	return "map_render"
}

func (s *MapRenderSystem) Priority() int {
	return parameter.PriorityMapRender
}

func (s *MapRenderSystem) Update(w *engine.World, res *engine.Resources) {
	cam := res.Camera
	if cam == nil {
		return
	}
	view := playerView(w)

	for y := cam.Top; y < cam.Top+cam.Height; y++ {
		for x := cam.Left; x < cam.Left+cam.Width; x++ {
			p := core.Pt(x, y)
			if !res.Map.InBounds(p) {
				continue
			}
			visible := view.Sees(p)
			if !visible && !res.Map.IsRevealed(p) {
				continue
			}

			glyph, fg := tileLook(res.Theme, res.Map.TileAt(p))
			if !visible {
				fg = fg.Scale(parameter.RevealedDimFactor)
			}
			res.Draw.Set(render.LayerMap, cam.ToScreen(p), fg, core.RGBBlack, glyph)
		}
	}
}

// tileLook maps a tile to its glyph and colour under the level theme
func tileLook(theme dungeon.Theme, t dungeon.TileType) (rune, core.RGB) {
	if t == dungeon.Exit {
		return '>', core.RGBCyan
	}
	switch theme {
	case dungeon.ForestTheme:
		if t == dungeon.Floor {
			return ';', core.RGBMoss
		}
		return '"', core.RGBBark
	default:
		if t == dungeon.Floor {
			return '.', core.RGBFloor
		}
		return '#', core.RGBStone
	}
}

// playerView returns the player's field of view, an empty view when absent
func playerView(w *engine.World) component.FieldOfViewComponent {
	player, ok := w.Components.Player.First()
	if !ok {
		return component.NewFieldOfView(0)
	}
	fov, ok := w.Components.FOV.Get(player)
	if !ok {
		return component.NewFieldOfView(0)
	}
	return fov
}
