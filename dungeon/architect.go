package dungeon

import (
	"math/rand"

	"github.com/lixenwraith/vi-crawler/core"
)

// Architect selects one dungeon generation algorithm; the set is closed
type Architect uint8

const (
	Rooms Architect = iota
	DrunkardsWalk
	CellularAutomata
	architectCount
)

// Architects lists every registered strategy in selection order
var Architects = [architectCount]Architect{Rooms, DrunkardsWalk, CellularAutomata}

func (a Architect) String() string {
	switch a {
	case Rooms:
		return "rooms"
	case DrunkardsWalk:
		return "drunkard"
	case CellularAutomata:
		return "automata"
	default:
		return "unknown"
	}
}

// RandomArchitect picks uniformly among registered strategies
func RandomArchitect(rng *rand.Rand) Architect {
	return Architects[rng.Intn(len(Architects))]
}

// draft is one architect pass before connectivity post-processing
type draft struct {
	m           *Map
	rooms       []core.Rect
	playerStart core.Point
	spawns      []core.Point // Architect-proposed spawn points, nil to sample from floor
}

// generate dispatches to the concrete algorithm
func (a Architect) generate(rng *rand.Rand, cfg Config) draft {
	switch a {
	case Rooms:
		return buildRooms(rng, cfg)
	case DrunkardsWalk:
		return buildDrunkard(rng, cfg)
	default:
		return buildAutomata(rng, cfg)
	}
}
