// Package system holds the per-phase behaviour run by the scheduler
package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/input"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// InputSystem turns this tick's key into at most one player intent
type InputSystem struct{}

// NewInputSystem creates the player input handler
func NewInputSystem() engine.System {
	return &InputSystem{}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update(w *engine.World, res *engine.Resources) {
	res.PlayerActed = false
	key := res.Input()
	if key == input.KeyNone || res.Turn() != engine.AwaitingInput {
		return
	}

	player := w.Player()
	pos, ok := w.Positions.At(player)
	core.MustHave(ok, player, "Position")

	switch {
	case key == input.KeyQuit:
		res.QuitRequested = true
		return

	case key.IsDirection():
		dest := pos.Add(core.Pt(key.Delta()))
		if target, ok := w.ActorAt(dest); ok && w.Components.Enemy.Has(target) {
			res.Intents.Attack(component.WantsToAttack{Attacker: player, Victim: target})
		} else {
			res.Intents.Move(component.WantsToMove{Entity: player, Destination: dest})
		}

	case key == input.KeyWait:
		if !enemyVisible(w, player) {
			hp, ok := w.Components.Health.Get(player)
			core.MustHave(ok, player, "Health")
			w.Components.Health.Set(player, hp.Heal(parameter.WaitHealAmount))
		}

	case key == input.KeyConfirm:
		item, ok := w.ItemAt(pos)
		if !ok || w.Components.Amulet.Has(item) {
			return
		}
		res.Intents.PickUp(component.WantsToPickUp{Actor: player, Item: item})
	}

	res.PlayerActed = true
	if res.Log != nil {
		res.Log.WithFields(logrus.Fields{"key": key, "turn": res.Turns}).Debug("player action")
	}
}

// enemyVisible reports whether any enemy stands inside e's field of view
func enemyVisible(w *engine.World, e core.Entity) bool {
	fov, ok := w.Components.FOV.Get(e)
	if !ok {
		return false
	}
	for _, enemy := range w.Components.Enemy.All() {
		if p, ok := w.Positions.At(enemy); ok && fov.Sees(p) {
			return true
		}
	}
	return false
}
