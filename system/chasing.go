package system

import (
	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// ChasingSystem steers ChasingPlayer actors down a Dijkstra map rooted at the player
// The field is computed once per monster phase and shared by every chaser
type ChasingSystem struct{}

// NewChasingSystem creates the chase AI
func NewChasingSystem() engine.System {
	return &ChasingSystem{}
}

func (s *ChasingSystem) Name() string {
	return "chasing"
}

func (s *ChasingSystem) Priority() int {
	return parameter.PriorityAI
}

func (s *ChasingSystem) Update(w *engine.World, res *engine.Resources) {
	chasers := w.Components.Chasing.All()
	if len(chasers) == 0 {
		return
	}

	player := w.Player()
	target, ok := w.Positions.At(player)
	core.MustHave(ok, player, "Position")

	res.Distance.MaxDepth = parameter.NavMaxDepth
	res.Distance.Compute(res.Map, target)

	for _, e := range chasers {
		pos, ok := w.Positions.At(e)
		if !ok {
			continue
		}
		fov, ok := w.Components.FOV.Get(e)
		core.MustHave(ok, e, "FieldOfView")

		if !fov.Sees(target) {
			randomStep(w, res, e, pos, player)
			continue
		}

		if pos.Adjacent(target) {
			res.Intents.Attack(component.WantsToAttack{Attacker: e, Victim: player})
			continue
		}
		if next, ok := res.Distance.DownhillNeighbor(pos); ok {
			res.Intents.Move(component.WantsToMove{Entity: e, Destination: next})
		}
	}
}
