package engine

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Stage is a set of systems run back to back; a flush follows every stage
type Stage struct {
	Name    string
	Systems []System
}

// NewStage sorts systems by priority, stable for equal priorities
func NewStage(name string, systems ...System) Stage {
	sorted := make([]System, len(systems))
	copy(sorted, systems)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return Stage{Name: name, Systems: sorted}
}

// Group is an ordered list of stages bound to one TurnState
type Group struct {
	Name   string
	Stages []Stage

	// CarryIntents keeps intents committed by the previous tick instead of clearing them at group
	// start; the player group resolves what the input tick produced
	CarryIntents bool
}

// Scheduler runs exactly one group per tick, chosen by TurnState before any system executes
type Scheduler struct {
	Input   Group
	Player  Group
	Monster Group
}

// GroupFor selects the group for a TurnState; terminal and transition states run nothing
func (s *Scheduler) GroupFor(turn TurnState) (*Group, bool) {
	switch turn {
	case AwaitingInput:
		return &s.Input, true
	case PlayerTurn:
		return &s.Player, true
	case MonsterTurn:
		return &s.Monster, true
	}
	return nil, false
}

// Tick runs the group matching the current TurnState
// Returns the group name, empty when nothing ran
func (s *Scheduler) Tick(w *World, res *Resources) string {
	g, ok := s.GroupFor(res.Turn())
	if !ok {
		return ""
	}

	if !g.CarryIntents {
		res.Intents.Reset()
	}
	res.Draw.Reset()
	for _, stage := range g.Stages {
		for _, sys := range stage.Systems {
			sys.Update(w, res)
		}
		res.Flush(w)
	}

	if res.Log != nil && res.Log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		res.Log.WithFields(logrus.Fields{"group": g.Name, "turn": res.Turn()}).Trace("tick")
	}
	return g.Name
}
