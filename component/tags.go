package component

// PlayerComponent marks the single player actor
type PlayerComponent struct{}

// EnemyComponent marks hostile actors
type EnemyComponent struct{}

// ItemComponent marks pickable objects
type ItemComponent struct{}

// AmuletComponent marks the amulet of the final level
type AmuletComponent struct{}

// ChasingPlayerComponent selects the distance-field chase AI
type ChasingPlayerComponent struct{}

// MovingRandomlyComponent selects the random walk AI
type MovingRandomlyComponent struct{}

// WeaponComponent marks an item whose damage adds to its carrier's attacks
type WeaponComponent struct{}
