package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/dungeon"
	"github.com/lixenwraith/vi-crawler/engine"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// EndTurnSystem is the only writer of TurnState during a tick
type EndTurnSystem struct{}

// NewEndTurnSystem creates the end-of-phase check
func NewEndTurnSystem() engine.System {
	return &EndTurnSystem{}
}

func (s *EndTurnSystem) Name() string {
	return "end_turn"
}

func (s *EndTurnSystem) Priority() int {
	return parameter.PriorityEndTurn
}

func (s *EndTurnSystem) Update(w *engine.World, res *engine.Resources) {
	current := res.Turn()
	switch current {
	case engine.AwaitingInput:
		if res.PlayerActed {
			res.SetTurn(engine.PlayerTurn)
		}
		return
	case engine.PlayerTurn, engine.MonsterTurn:
	default:
		return
	}

	next := Outcome(w, res.Map, current.Advance())
	if current == engine.PlayerTurn {
		res.Turns++
	}

	switch next {
	case engine.GameOver:
		res.Messages.Add("You die")
		res.Play(engine.CueGameOver)
	case engine.Victory:
		res.Messages.Add("You recover the Amulet of Yala")
		res.Play(engine.CueVictory)
	case engine.NextLevel:
		res.Play(engine.CueDescend)
	}
	if next != current.Advance() && res.Log != nil {
		res.Log.WithFields(logrus.Fields{"state": next, "level": res.Level, "turns": res.Turns}).Info("run state changed")
	}
	res.SetTurn(next)
}

// Outcome applies the end-of-phase checks to the default successor
// Death outranks victory, victory outranks the exit
func Outcome(w *engine.World, m *dungeon.Map, fallback engine.TurnState) engine.TurnState {
	player := w.Player()
	hp, ok := w.Components.Health.Get(player)
	core.MustHave(ok, player, "Health")
	if hp.Dead() {
		return engine.GameOver
	}

	pos, ok := w.Positions.At(player)
	core.MustHave(ok, player, "Position")
	for _, amulet := range w.Components.Amulet.All() {
		if p, ok := w.Positions.At(amulet); ok && p == pos {
			return engine.Victory
		}
	}

	if m.TileAt(pos) == dungeon.Exit {
		return engine.NextLevel
	}
	return fallback
}
