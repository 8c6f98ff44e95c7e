package system

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
	"github.com/lixenwraith/vi-crawler/render"
)

// HUDSystem prints player status, the message log and end-of-run banners
type HUDSystem struct{}

// NewHUDSystem creates the HUD renderer
func NewHUDSystem() engine.System {
	return &HUDSystem{}
}

func (s *HUDSystem) Name() string {
	return "hud"
}

func (s *HUDSystem) Priority() int {
	return parameter.PriorityHUD
}

func (s *HUDSystem) Update(w *engine.World, res *engine.Resources) {
	player, ok := w.Components.Player.First()
	if !ok {
		return
	}
	hp, _ := w.Components.Health.Get(player)

	status := fmt.Sprintf("HP %d/%d  Depth %d  Attack %d  Turn %d", hp.Current, hp.Max, res.Level+1, AttackDamage(w, player), res.Turns)
	res.Draw.Print(render.LayerHUD, core.Pt(0, 0), status, core.RGBWhite)

	if carried := carriedList(w, player); carried != "" {
		res.Draw.Print(render.LayerHUD, core.Pt(len(status)+2, 0), "Carried: "+carried, core.RGBCyan)
	}

	for i, line := range res.Messages.Lines() {
		res.Draw.Print(render.LayerHUD, core.Pt(0, 1+i), line, core.RGBGray)
	}

	switch res.Turn() {
	case engine.GameOver:
		res.Draw.Print(render.LayerHUD, core.Pt(0, 2+len(res.Messages.Lines())), "You have died", core.RGBRed)
	case engine.Victory:
		res.Draw.Print(render.LayerHUD, core.Pt(0, 2+len(res.Messages.Lines())), "You have won", core.RGBGreen)
	}
}

// carriedList names everything the player holds in pickup order; the weapon is marked wielded
func carriedList(w *engine.World, player core.Entity) string {
	var names []string
	for _, item := range w.CarriedBy(player) {
		name := nameOf(w, item)
		if w.Components.Weapon.Has(item) {
			name += " (wielded)"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
