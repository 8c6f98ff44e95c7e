package system

import (
	"testing"

	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/engine"
)

func TestCombatWeaponDamageRemovesVictim(t *testing.T) {
	a := newArena(t, 10, 10, core.Pt(2, 2))
	attacker := a.enemy(core.Pt(4, 4), 5, false)
	a.w.Components.Damage.Set(attacker, component.DamageComponent{Amount: 2})
	a.weapon(attacker, 3)
	victim := a.enemy(core.Pt(5, 4), 10, false)
	a.w.Components.Health.Set(victim, component.HealthComponent{Current: 4, Max: 10})

	a.res.Intents.Attack(component.WantsToAttack{Attacker: attacker, Victim: victim})
	a.res.Intents.Commit()
	a.run(NewCombatSystem())

	if a.w.Alive(victim) {
		t.Fatal("victim at -1 hp should be removed")
	}
	if a.w.Components.Health.Has(victim) || a.w.Positions.Has(victim) {
		t.Error("removed victim kept components")
	}
	if a.res.Intents.Produced() {
		t.Error("attack intent not consumed")
	}

	if got := Outcome(a.w, a.res.Map, engine.MonsterTurn); got != engine.MonsterTurn {
		t.Errorf("enemy death changed outcome to %v", got)
	}
}

func TestCombatPlayerIsNeverRemoved(t *testing.T) {
	a := newArena(t, 10, 10, core.Pt(2, 2))
	orc := a.enemy(core.Pt(3, 2), 3, true)
	a.w.Components.Damage.Set(orc, component.DamageComponent{Amount: 20})

	a.res.Intents.Attack(component.WantsToAttack{Attacker: orc, Victim: a.player})
	a.res.Intents.Commit()
	a.run(NewCombatSystem())

	if !a.w.Alive(a.player) {
		t.Fatal("player entity must survive death for the end-turn check")
	}
	if got := Outcome(a.w, a.res.Map, engine.AwaitingInput); got != engine.GameOver {
		t.Errorf("expected GameOver, got %v", got)
	}
}

func TestCombatAppliesInCreationOrder(t *testing.T) {
	a := newArena(t, 10, 10, core.Pt(2, 2))
	victim := a.enemy(core.Pt(5, 5), 3, false)
	first := a.enemy(core.Pt(4, 5), 3, false)
	second := a.enemy(core.Pt(6, 5), 3, false)
	a.w.Components.Damage.Set(first, component.DamageComponent{Amount: 3})

	a.res.Intents.Attack(component.WantsToAttack{Attacker: first, Victim: victim})
	a.res.Intents.Attack(component.WantsToAttack{Attacker: second, Victim: victim})
	a.res.Intents.Commit()
	a.run(NewCombatSystem())

	if a.w.Alive(victim) {
		t.Error("first attack should kill the victim")
	}
	if len(a.res.Messages.Lines()) != 2 {
		t.Errorf("expected one hit and one death line, got %v", a.res.Messages.Lines())
	}
}

func TestAttackDamageIgnoresNonWeapons(t *testing.T) {
	a := newArena(t, 10, 10, core.Pt(2, 2))
	trinket := a.weapon(a.player, 5)
	a.w.Components.Weapon.Remove(trinket)
	a.weapon(a.player, 2)

	if got := AttackDamage(a.w, a.player); got != 3 {
		t.Errorf("damage %d, want base 1 + weapon 2", got)
	}
}
