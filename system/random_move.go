package system

import (
	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// RandomMoveSystem walks MovingRandomly actors one uniform cardinal step
type RandomMoveSystem struct{}

// NewRandomMoveSystem creates the wandering AI
func NewRandomMoveSystem() engine.System {
	return &RandomMoveSystem{}
}

func (s *RandomMoveSystem) Name() string {
	return "random_move"
}

func (s *RandomMoveSystem) Priority() int {
	return parameter.PriorityRandomMove
}

func (s *RandomMoveSystem) Update(w *engine.World, res *engine.Resources) {
	player := w.Player()
	for _, e := range w.Components.Random.All() {
		if pos, ok := w.Positions.At(e); ok {
			randomStep(w, res, e, pos, player)
		}
	}
}

// randomStep picks one of the four directions uniformly
// Stepping onto the player attacks; a non-enterable destination emits nothing
func randomStep(w *engine.World, res *engine.Resources, e core.Entity, pos core.Point, player core.Entity) {
	dest := pos.Add(core.Cardinals[res.Rand.Intn(len(core.Cardinals))])
	if victim, ok := w.ActorAt(dest); ok && victim == player {
		res.Intents.Attack(component.WantsToAttack{Attacker: e, Victim: player})
		return
	}
	if res.Map.CanEnter(dest) {
		res.Intents.Move(component.WantsToMove{Entity: e, Destination: dest})
	}
}
