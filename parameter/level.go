package parameter

// Map and generation defaults
const (
	// MapWidth and MapHeight are the dungeon grid size in tiles
	MapWidth  = 80
	MapHeight = 50

	// MaxGenerationAttempts bounds the architect retry loop
	MaxGenerationAttempts = 10

	// MinFloorFraction rejects maps whose reachable floor is below this share of all tiles
	MinFloorFraction = 0.08

	// FinalLevel is the depth carrying the amulet; shallower levels get an exit
	FinalLevel = 2

	// NumMonsters is the spawn point budget for cave-style architects
	NumMonsters = 50

	// MonsterMinDistance keeps spawns away from the player start (Euclidean tiles)
	MonsterMinDistance = 10
)

// Rooms architect
const (
	NumRooms        = 20
	RoomMinSize     = 2
	RoomMaxSize     = 10 // Exclusive
	RoomSampleCap   = 2000
	RoomMinAccepted = 2
)

// Drunkard's walk architect
const (
	DrunkardStaggerDistance = 400 // Steps per walker
	DrunkardFloorDivisor    = 3   // Target carved tiles = area / divisor
	DrunkardMaxWalkers      = 500
)

// Cellular automata architect
const (
	AutomataFloorChance    = 55 // Percent of tiles seeded as floor
	AutomataGenerations    = 10
	AutomataFloorThreshold = 4 // Fewer floor neighbours than this becomes wall
)
