package component

import "github.com/lixenwraith/vi-crawler/core"

// CarriedComponent is a non-owning back-reference to the carrying actor
type CarriedComponent struct {
	By core.Entity
}

// DamageComponent is base damage for actors and bonus damage for weapons
type DamageComponent struct {
	Amount int
}

// ProvidesHealingComponent restores hit points when consumed
type ProvidesHealingComponent struct {
	Amount int
}

// ProvidesDungeonMapComponent reveals the whole level when consumed
type ProvidesDungeonMapComponent struct{}
