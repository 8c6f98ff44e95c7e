package dungeon

import (
	"math/rand"

	"github.com/lixenwraith/vi-crawler/core"
)

// buildAutomata seeds random noise and smooths it into caves
func buildAutomata(rng *rand.Rand, cfg Config) draft {
	m := NewMap(cfg.Width, cfg.Height)
	for y := 1; y < cfg.Height-1; y++ {
		for x := 1; x < cfg.Width-1; x++ {
			if rng.Intn(100) < cfg.AutomataFloorChance {
				m.SetTile(core.Point{X: x, Y: y}, Floor)
			}
		}
	}

	for gen := 0; gen < cfg.AutomataGenerations; gen++ {
		automataStep(m, cfg.AutomataThreshold)
	}

	return draft{m: m, playerStart: nearestFloor(m, core.Point{X: cfg.Width / 2, Y: cfg.Height / 2})}
}

// automataStep applies one generation: a tile with fewer than threshold floor neighbours
// (8-neighbourhood) becomes wall, otherwise floor. Border tiles stay wall.
func automataStep(m *Map, threshold int) {
	next := make([]TileType, len(m.Tiles))
	copy(next, m.Tiles)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			floors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if m.Tiles[(y+dy)*m.Width+x+dx] == Floor {
						floors++
					}
				}
			}
			idx := y*m.Width + x
			if floors < threshold {
				next[idx] = Wall
			} else {
				next[idx] = Floor
			}
		}
	}

	m.Tiles = next
}

// nearestFloor returns the floor tile closest to target by Euclidean distance, lowest index on ties
// Returns target itself when the map has no floor
func nearestFloor(m *Map, target core.Point) core.Point {
	best := target
	bestDist := -1
	for idx, t := range m.Tiles {
		if t != Floor {
			continue
		}
		p := m.Point(idx)
		if d := p.DistSq(target); bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
