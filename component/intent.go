package component

import "github.com/lixenwraith/vi-crawler/core"

// WantsToMove is a tick-local command to relocate an actor
// Intents live in engine.Intents queues, never in component stores
type WantsToMove struct {
	Entity      core.Entity
	Destination core.Point
}

// WantsToAttack is a tick-local command to strike a victim
type WantsToAttack struct {
	Attacker core.Entity
	Victim   core.Entity
}

// WantsToPickUp is a tick-local command for the actor to collect an item
type WantsToPickUp struct {
	Actor core.Entity
	Item  core.Entity
}
