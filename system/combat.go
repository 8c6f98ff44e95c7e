package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// CombatSystem resolves committed attack intents in creation order
type CombatSystem struct{}

// NewCombatSystem creates the combat resolver
func NewCombatSystem() engine.System {
	return &CombatSystem{}
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) Update(w *engine.World, res *engine.Resources) {
	// Despawns land at the next flush; victims killed earlier in this phase take no further hits
	killed := make(map[core.Entity]bool)
	for _, attack := range res.Intents.TakeAttacks() {
		if !w.Alive(attack.Attacker) || !w.Alive(attack.Victim) || killed[attack.Victim] || killed[attack.Attacker] {
			continue
		}
		hp, ok := w.Components.Health.Get(attack.Victim)
		if !ok {
			continue
		}

		damage := AttackDamage(w, attack.Attacker)
		hp.Current -= damage
		w.Components.Health.Set(attack.Victim, hp)

		isPlayer := w.Components.Player.Has(attack.Victim)
		res.Messages.Add(fmt.Sprintf("%s hits %s for %d", nameOf(w, attack.Attacker), nameOf(w, attack.Victim), damage))
		if res.Log != nil {
			res.Log.WithFields(logrus.Fields{
				"attacker": attack.Attacker,
				"victim":   attack.Victim,
				"damage":   damage,
				"hp":       hp.Current,
			}).Debug("attack resolved")
		}

		if hp.Dead() && !isPlayer {
			res.Messages.Add(fmt.Sprintf("%s dies", nameOf(w, attack.Victim)))
			res.Commands.Despawn(attack.Victim)
			killed[attack.Victim] = true
			res.Play(engine.CueKill)
			continue
		}
		res.Play(engine.CueHit)
	}
}

// AttackDamage is the attacker's base damage plus every weapon it carries
func AttackDamage(w *engine.World, attacker core.Entity) int {
	total := 0
	if d, ok := w.Components.Damage.Get(attacker); ok {
		total = d.Amount
	}
	for _, item := range w.CarriedBy(attacker) {
		if !w.Components.Weapon.Has(item) {
			continue
		}
		if d, ok := w.Components.Damage.Get(item); ok {
			total += d.Amount
		}
	}
	return total
}

func nameOf(w *engine.World, e core.Entity) string {
	if n, ok := w.Components.Name.Get(e); ok {
		return n.Name
	}
	return e.String()
}
