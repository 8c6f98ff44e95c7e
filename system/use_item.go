package system

import (
	"fmt"

	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// UseItemSystem applies pickup intents
// Consumables take effect at once and vanish; a weapon replaces whatever the actor carried
type UseItemSystem struct{}

// NewUseItemSystem creates the pickup resolver
func NewUseItemSystem() engine.System {
	return &UseItemSystem{}
}

func (s *UseItemSystem) Name() string {
	return "use_item"
}

func (s *UseItemSystem) Priority() int {
	return parameter.PriorityUseItem
}

func (s *UseItemSystem) Update(w *engine.World, res *engine.Resources) {
	for _, pick := range res.Intents.TakePickUps() {
		if !w.Alive(pick.Actor) || !w.Alive(pick.Item) {
			continue
		}
		actorPos, ok := w.Positions.At(pick.Actor)
		core.MustHave(ok, pick.Actor, "Position")
		if itemPos, ok := w.Positions.At(pick.Item); !ok || itemPos != actorPos {
			continue
		}

		name := nameOf(w, pick.Item)
		consumed := false

		if heal, ok := w.Components.Healing.Get(pick.Item); ok {
			if hp, ok := w.Components.Health.Get(pick.Actor); ok {
				w.Components.Health.Set(pick.Actor, hp.Heal(heal.Amount))
			}
			consumed = true
		}
		if w.Components.DungeonMap.Has(pick.Item) {
			res.Map.RevealAll()
			consumed = true
		}

		if consumed {
			res.Messages.Add(fmt.Sprintf("You use the %s", name))
			res.Commands.Despawn(pick.Item)
		} else {
			if w.Components.Weapon.Has(pick.Item) {
				for _, old := range w.CarriedBy(pick.Actor) {
					if w.Components.Weapon.Has(old) {
						res.Commands.Despawn(old)
					}
				}
			}
			w.Positions.Remove(pick.Item)
			w.Components.Carried.Set(pick.Item, component.CarriedComponent{By: pick.Actor})
			res.Messages.Add(fmt.Sprintf("You pick up the %s", name))
		}
		res.Play(engine.CuePickUp)
	}
}
