package parameter

// Player defaults
const (
	PlayerHitPoints = 10
	PlayerFOVRadius = 8
	PlayerGlyph     = '@'
	WaitHealAmount  = 1
)

// Enemy defaults
const (
	EnemyFOVRadius = 6
)
