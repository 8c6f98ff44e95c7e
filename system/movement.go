package system

import (
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// MovementSystem applies committed move intents
// A destination is rejected if it cannot be entered or another actor already holds it
type MovementSystem struct{}

// NewMovementSystem creates the movement resolver
func NewMovementSystem() engine.System {
	return &MovementSystem{}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update(w *engine.World, res *engine.Resources) {
	for _, move := range res.Intents.TakeMoves() {
		if !w.Alive(move.Entity) || !res.Map.CanEnter(move.Destination) {
			continue
		}
		if _, ok := w.Positions.At(move.Entity); !ok {
			continue
		}
		if other, ok := w.ActorAt(move.Destination); ok && other != move.Entity {
			continue
		}

		w.Positions.Move(move.Entity, move.Destination)
		if fov, ok := w.Components.FOV.Get(move.Entity); ok {
			fov.Dirty = true
			w.Components.FOV.Set(move.Entity, fov)
		}
		if w.Components.Player.Has(move.Entity) && res.Camera != nil {
			res.Camera.Focus(move.Destination)
		}
	}
}
