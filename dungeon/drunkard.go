package dungeon

import (
	"math/rand"

	"github.com/lixenwraith/vi-crawler/core"
)

// buildDrunkard carves with random walkers until a target share of the map is floor
// The first walker starts at the centre; later walkers start on a random already-carved tile so
// every walk joins the existing cave
func buildDrunkard(rng *rand.Rand, cfg Config) draft {
	m := NewMap(cfg.Width, cfg.Height)
	center := core.Point{X: cfg.Width / 2, Y: cfg.Height / 2}
	target := cfg.Width * cfg.Height / cfg.DrunkardFloorDivisor

	carved := drunkardWalk(m, rng, center, cfg.DrunkardStagger)
	for walkers := 1; carved < target && walkers < cfg.DrunkardMaxWalkers; walkers++ {
		carved += drunkardWalk(m, rng, randomFloor(m, rng, center), cfg.DrunkardStagger)
	}

	return draft{m: m, playerStart: center}
}

// drunkardWalk runs one walker for at most budget steps, returning newly carved tiles
// Moves leaving the interior are rejected, keeping a solid outer wall
func drunkardWalk(m *Map, rng *rand.Rand, start core.Point, budget int) int {
	pos := start
	carved := 0
	for step := 0; step < budget; step++ {
		if m.TileAt(pos) != Floor {
			m.SetTile(pos, Floor)
			carved++
		}
		next := pos.Add(core.Cardinals[rng.Intn(len(core.Cardinals))])
		if next.X < 1 || next.Y < 1 || next.X >= m.Width-1 || next.Y >= m.Height-1 {
			continue
		}
		pos = next
	}
	return carved
}

// randomFloor picks a uniformly random floor tile, fallback when none exists
func randomFloor(m *Map, rng *rand.Rand, fallback core.Point) core.Point {
	floors := m.Count(Floor)
	if floors == 0 {
		return fallback
	}
	pick := rng.Intn(floors)
	for idx, t := range m.Tiles {
		if t != Floor {
			continue
		}
		if pick == 0 {
			return m.Point(idx)
		}
		pick--
	}
	return fallback
}
