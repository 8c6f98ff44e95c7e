package system

import (
	"testing"

	"github.com/lixenwraith/vi-crawler/component"
	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/dungeon"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/input"
	"github.com/lixenwraith/vi-crawler/spawner"
)

func TestFullRoundReturnsToAwaitingInput(t *testing.T) {
	a := newArena(t, 12, 12, core.Pt(5, 5))
	s := NewScheduler()

	steps := []struct {
		key   input.Key
		group string
		after engine.TurnState
	}{
		{input.KeyRight, "input", engine.PlayerTurn},
		{input.KeyNone, "player", engine.MonsterTurn},
		{input.KeyNone, "monster", engine.AwaitingInput},
	}
	for i, st := range steps {
		if got := a.tick(s, st.key); got != st.group {
			t.Fatalf("step %d ran %q, want %q", i, got, st.group)
		}
		if a.res.Turn() != st.after {
			t.Fatalf("step %d state %v, want %v", i, a.res.Turn(), st.after)
		}
	}

	if p := a.pos(a.player); p != core.Pt(6, 5) {
		t.Errorf("player at %v, want (6,5)", p)
	}
	if hp, _ := a.w.Components.Health.Get(a.player); hp.Current != 10 || hp.Max != 10 {
		t.Errorf("health changed: %+v", hp)
	}
	if a.res.Turns != 1 {
		t.Errorf("turns %d, want 1", a.res.Turns)
	}
}

func TestNoKeyKeepsAwaitingInput(t *testing.T) {
	a := newArena(t, 12, 12, core.Pt(5, 5))
	s := NewScheduler()
	for i := 0; i < 3; i++ {
		a.tick(s, input.KeyNone)
	}
	if a.res.Turn() != engine.AwaitingInput {
		t.Errorf("idle ticks moved state to %v", a.res.Turn())
	}
	if a.res.Draw.Len() == 0 {
		t.Error("input group should still render")
	}
}

func TestBlockedMoveStillSpendsTurn(t *testing.T) {
	a := newArena(t, 12, 12, core.Pt(1, 1))
	s := NewScheduler()
	a.tick(s, input.KeyLeft)
	a.tick(s, input.KeyNone)
	if a.pos(a.player) != core.Pt(1, 1) {
		t.Errorf("player walked into a wall: %v", a.pos(a.player))
	}
	if a.res.Turn() != engine.MonsterTurn {
		t.Errorf("state %v, want monster_turn", a.res.Turn())
	}
}

func TestOutcomePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		hp      int
		amulet  bool
		exit    bool
		want    engine.TurnState
		current engine.TurnState
	}{
		{"plain", 10, false, false, engine.MonsterTurn, engine.PlayerTurn},
		{"victory at one hp", 1, true, false, engine.Victory, engine.PlayerTurn},
		{"death beats victory", 0, true, false, engine.GameOver, engine.PlayerTurn},
		{"exit", 10, false, true, engine.NextLevel, engine.MonsterTurn},
		{"victory beats exit", 5, true, true, engine.Victory, engine.MonsterTurn},
		{"death beats exit", -3, false, true, engine.GameOver, engine.MonsterTurn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena(t, 10, 10, core.Pt(4, 4))
			a.w.Components.Health.Set(a.player, component.HealthComponent{Current: tt.hp, Max: 10})
			if tt.amulet {
				spawner.SpawnAmulet(a.w, core.Pt(4, 4))
			}
			if tt.exit {
				a.res.Map.SetTile(core.Pt(4, 4), dungeon.Exit)
			}
			a.res.SetTurn(tt.current)
			a.run(NewEndTurnSystem())
			if a.res.Turn() != tt.want {
				t.Errorf("got %v, want %v", a.res.Turn(), tt.want)
			}
		})
	}
}

func TestStepOntoExitTriggersNextLevel(t *testing.T) {
	a := newArena(t, 12, 12, core.Pt(5, 5))
	a.res.Map.SetTile(core.Pt(5, 4), dungeon.Exit)
	s := NewScheduler()

	a.tick(s, input.KeyUp)
	a.tick(s, input.KeyNone)
	if a.res.Turn() != engine.NextLevel {
		t.Errorf("state %v, want next_level", a.res.Turn())
	}
	if got := a.tick(s, input.KeyNone); got != "" {
		t.Errorf("scheduler ran %q in next_level", got)
	}
}

func TestFOVDirtyClearedAfterMove(t *testing.T) {
	a := newArena(t, 12, 12, core.Pt(5, 5))
	a.run(NewFOVSystem())

	a.res.Intents.Move(component.WantsToMove{Entity: a.player, Destination: core.Pt(6, 5)})
	a.res.Intents.Commit()
	a.run(NewMovementSystem())
	if fov, _ := a.w.Components.FOV.Get(a.player); !fov.Dirty {
		t.Fatal("move must mark FOV dirty before recompute")
	}

	a.run(NewFOVSystem())
	fov, _ := a.w.Components.FOV.Get(a.player)
	if fov.Dirty {
		t.Error("FOV still dirty after recompute")
	}
	if !fov.Sees(core.Pt(6, 5)) || !a.res.Map.IsRevealed(core.Pt(10, 5)) {
		t.Error("recomputed view should include new tile and reveal the map")
	}
	if a.res.Camera.Left != 6-a.res.Camera.Width/2 {
		t.Errorf("camera not following player: left %d", a.res.Camera.Left)
	}
}

func TestMovementRejectsOccupiedTile(t *testing.T) {
	a := newArena(t, 12, 12, core.Pt(5, 5))
	orc := a.enemy(core.Pt(6, 5), 3, false)
	other := a.enemy(core.Pt(8, 8), 3, false)

	a.res.Intents.Move(component.WantsToMove{Entity: a.player, Destination: core.Pt(6, 5)})
	a.res.Intents.Move(component.WantsToMove{Entity: other, Destination: core.Pt(8, 7)})
	a.res.Intents.Move(component.WantsToMove{Entity: orc, Destination: core.Pt(7, 5)})
	a.res.Intents.Commit()
	a.run(NewMovementSystem())

	if a.pos(a.player) != core.Pt(5, 5) {
		t.Errorf("player moved onto an occupied tile")
	}
	if a.pos(orc) != core.Pt(7, 5) || a.pos(other) != core.Pt(8, 7) {
		t.Errorf("unexpected positions %v %v", a.pos(orc), a.pos(other))
	}
}
