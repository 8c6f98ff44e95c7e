package system

import "github.com/lixenwraith/vi-crawler/engine"

// NewScheduler wires the three phase groups
// Every stage ends in a flush, so intents and despawns from one stage are visible to the next
func NewScheduler() *engine.Scheduler {
	return &engine.Scheduler{
		Input: engine.Group{
			Name: "input",
			Stages: []engine.Stage{
				engine.NewStage("input", NewInputSystem()),
				engine.NewStage("fov", NewFOVSystem()),
				NewRenderStage(),
				engine.NewStage("end_turn", NewEndTurnSystem()),
			},
		},
		Player: engine.Group{
			Name:         "player",
			CarryIntents: true,
			Stages: []engine.Stage{
				engine.NewStage("use_item", NewUseItemSystem()),
				engine.NewStage("combat", NewCombatSystem()),
				engine.NewStage("movement", NewMovementSystem()),
				engine.NewStage("fov", NewFOVSystem()),
				NewRenderStage(),
				engine.NewStage("end_turn", NewEndTurnSystem()),
			},
		},
		Monster: engine.Group{
			Name: "monster",
			Stages: []engine.Stage{
				engine.NewStage("ai", NewChasingSystem(), NewRandomMoveSystem()),
				engine.NewStage("combat", NewCombatSystem()),
				engine.NewStage("movement", NewMovementSystem()),
				engine.NewStage("fov", NewFOVSystem()),
				NewRenderStage(),
				engine.NewStage("end_turn", NewEndTurnSystem()),
			},
		},
	}
}

// NewRenderStage returns the draw-only stage used while a run is frozen in a terminal state
func NewRenderStage() engine.Stage {
	return engine.NewStage("render", NewMapRenderSystem(), NewActorRenderSystem(), NewHUDSystem())
}
