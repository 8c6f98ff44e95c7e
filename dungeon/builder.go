package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/vi-crawler/core"
	"github.com/lixenwraith/vi-crawler/navigation"
	"github.com/lixenwraith/vi-crawler/parameter"
)

// Config holds generation tunables; DefaultConfig mirrors the parameter package
type Config struct {
	Width, Height int

	MaxAttempts      int
	MinFloorFraction float64
	MaxDepth         int // Distance field cutoff used for connectivity

	NumMonsters        int
	MonsterMinDistance int

	NumRooms      int
	RoomMinSize   int
	RoomMaxSize   int
	RoomSampleCap int
	MinRooms      int

	DrunkardStagger      int
	DrunkardFloorDivisor int
	DrunkardMaxWalkers   int

	AutomataFloorChance int
	AutomataGenerations int
	AutomataThreshold   int
}

// DefaultConfig returns the standard generation settings for a width x height map
func DefaultConfig(width, height int) Config {
	return Config{
		Width:                width,
		Height:               height,
		MaxAttempts:          parameter.MaxGenerationAttempts,
		MinFloorFraction:     parameter.MinFloorFraction,
		MaxDepth:             width * height,
		NumMonsters:          parameter.NumMonsters,
		MonsterMinDistance:   parameter.MonsterMinDistance,
		NumRooms:             parameter.NumRooms,
		RoomMinSize:          parameter.RoomMinSize,
		RoomMaxSize:          parameter.RoomMaxSize,
		RoomSampleCap:        parameter.RoomSampleCap,
		MinRooms:             parameter.RoomMinAccepted,
		DrunkardStagger:      parameter.DrunkardStaggerDistance,
		DrunkardFloorDivisor: parameter.DrunkardFloorDivisor,
		DrunkardMaxWalkers:   parameter.DrunkardMaxWalkers,
		AutomataFloorChance:  parameter.AutomataFloorChance,
		AutomataGenerations:  parameter.AutomataGenerations,
		AutomataThreshold:    parameter.AutomataFloorThreshold,
	}
}

// Result is a connected, playable dungeon
type Result struct {
	Architect     Architect
	Theme         Theme
	Map           *Map
	Rooms         []core.Rect // Empty for cave architects
	PlayerStart   core.Point
	AmuletStart   core.Point // Most distant reachable tile, doubles as the exit location
	MonsterSpawns []core.Point
	Attempts      int
}

// Build picks one architect and one theme uniformly and generates with them
func Build(rng *rand.Rand, cfg Config) (*Result, error) {
	a, theme := RandomArchitect(rng), RandomTheme(rng)
	res, err := BuildWith(a, rng, cfg)
	if err != nil {
		return nil, err
	}
	res.Theme = theme
	return res, nil
}

// BuildWith generates with a fixed architect, retrying up to cfg.MaxAttempts
// Exhausting the budget wraps core.ErrGenerationFailure; no partial map is returned
func BuildWith(a Architect, rng *rand.Rand, cfg Config) (*Result, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return nil, fmt.Errorf("%w: map %dx%d too small", core.ErrGenerationFailure, cfg.Width, cfg.Height)
	}

	var reason string
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		res, why := finish(a, a.generate(rng, cfg), rng, cfg)
		if res != nil {
			res.Attempts = attempt
			return res, nil
		}
		reason = why
	}
	return nil, fmt.Errorf("%w: %s after %d attempts: %s", core.ErrGenerationFailure, a, cfg.MaxAttempts, reason)
}

// finish validates a draft and applies the connectivity post-process
// Returns a rejection reason when the draft is unusable
func finish(a Architect, d draft, rng *rand.Rand, cfg Config) (*Result, string) {
	m := d.m
	if a == Rooms && len(d.rooms) < cfg.MinRooms {
		return nil, "too few rooms"
	}
	if m.TileAt(d.playerStart) != Floor {
		return nil, "player start not on floor"
	}

	field := navigation.Compute(m, cfg.MaxDepth, d.playerStart)
	cullUnreachable(m, field)

	if float64(field.ReachableCount()) < cfg.MinFloorFraction*float64(cfg.Width*cfg.Height) {
		return nil, "not enough connected floor"
	}

	amulet, ok := field.MostDistant()
	if !ok || amulet == d.playerStart {
		return nil, "no distant point"
	}

	var spawns []core.Point
	if d.spawns != nil {
		spawns = filterSpawns(m, d.spawns, d.playerStart, amulet)
	} else {
		spawns = sampleSpawns(m, rng, d.playerStart, amulet, cfg.NumMonsters, cfg.MonsterMinDistance)
	}

	return &Result{
		Architect:     a,
		Map:           m,
		Rooms:         d.rooms,
		PlayerStart:   d.playerStart,
		AmuletStart:   amulet,
		MonsterSpawns: spawns,
	}, ""
}

// cullUnreachable walls off every enterable tile the field did not reach
func cullUnreachable(m *Map, field *navigation.DistanceField) {
	for idx, t := range m.Tiles {
		if t != Wall && field.Distances[idx] == navigation.Unreachable {
			m.Tiles[idx] = Wall
		}
	}
}

// FindMostDistant returns the tile farthest from start by step distance, lowest index on ties
func FindMostDistant(m *Map, start core.Point) (core.Point, bool) {
	return navigation.Compute(m, m.Width*m.Height, start).MostDistant()
}

// PlaceExit turns the amulet location into a level exit
func (r *Result) PlaceExit() {
	r.Map.SetTile(r.AmuletStart, Exit)
}

func filterSpawns(m *Map, candidates []core.Point, start, amulet core.Point) []core.Point {
	out := make([]core.Point, 0, len(candidates))
	for _, p := range candidates {
		if p == start || p == amulet || m.TileAt(p) != Floor {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sampleSpawns draws up to n distinct floor tiles farther than minDist from start
func sampleSpawns(m *Map, rng *rand.Rand, start, amulet core.Point, n, minDist int) []core.Point {
	minSq := minDist * minDist
	pool := make([]core.Point, 0, len(m.Tiles)/4)
	for idx, t := range m.Tiles {
		if t != Floor {
			continue
		}
		p := m.Point(idx)
		if p == amulet || p.DistSq(start) <= minSq {
			continue
		}
		pool = append(pool, p)
	}

	spawns := make([]core.Point, 0, min(n, len(pool)))
	for len(spawns) < n && len(pool) > 0 {
		i := rng.Intn(len(pool))
		spawns = append(spawns, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return spawns
}
