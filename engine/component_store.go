package engine

import "github.com/lixenwraith/vi-crawler/component"

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; pointers remain valid for the world's lifetime
type ComponentStore struct {
	Render *Store[component.RenderComponent]
	Name   *Store[component.NameComponent]
	Health *Store[component.HealthComponent]
	FOV    *Store[component.FieldOfViewComponent]

	// Tags
	Player  *Store[component.PlayerComponent]
	Enemy   *Store[component.EnemyComponent]
	Item    *Store[component.ItemComponent]
	Amulet  *Store[component.AmuletComponent]
	Chasing *Store[component.ChasingPlayerComponent]
	Random  *Store[component.MovingRandomlyComponent]
	Weapon  *Store[component.WeaponComponent]

	// Items
	Carried    *Store[component.CarriedComponent]
	Damage     *Store[component.DamageComponent]
	Healing    *Store[component.ProvidesHealingComponent]
	DungeonMap *Store[component.ProvidesDungeonMapComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Render:     NewStore[component.RenderComponent](),
		Name:       NewStore[component.NameComponent](),
		Health:     NewStore[component.HealthComponent](),
		FOV:        NewStore[component.FieldOfViewComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Item:       NewStore[component.ItemComponent](),
		Amulet:     NewStore[component.AmuletComponent](),
		Chasing:    NewStore[component.ChasingPlayerComponent](),
		Random:     NewStore[component.MovingRandomlyComponent](),
		Weapon:     NewStore[component.WeaponComponent](),
		Carried:    NewStore[component.CarriedComponent](),
		Damage:     NewStore[component.DamageComponent](),
		Healing:    NewStore[component.ProvidesHealingComponent](),
		DungeonMap: NewStore[component.ProvidesDungeonMapComponent](),
	}
}

// stores lists every component store for uniform lifecycle operations
func (c *ComponentStore) stores() []AnyStore {
	return []AnyStore{
		c.Render, c.Name, c.Health, c.FOV,
		c.Player, c.Enemy, c.Item, c.Amulet, c.Chasing, c.Random, c.Weapon,
		c.Carried, c.Damage, c.Healing, c.DungeonMap,
	}
}
