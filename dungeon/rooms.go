package dungeon

import (
	"math/rand"
	"sort"

	"github.com/lixenwraith/vi-crawler/core"
)

// buildRooms scatters non-overlapping rooms and joins their centres with L-shaped corridors
func buildRooms(rng *rand.Rand, cfg Config) draft {
	m := NewMap(cfg.Width, cfg.Height)
	rooms := make([]core.Rect, 0, cfg.NumRooms)

	maxW := cfg.Width - cfg.RoomMaxSize
	maxH := cfg.Height - cfg.RoomMaxSize
	if maxW < 2 || maxH < 2 {
		return draft{m: m}
	}

	for tries := 0; len(rooms) < cfg.NumRooms && tries < cfg.RoomSampleCap; tries++ {
		room := core.RectWithSize(
			1+rng.Intn(maxW-1),
			1+rng.Intn(maxH-1),
			cfg.RoomMinSize+rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize),
			cfg.RoomMinSize+rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize),
		)

		overlap := false
		for _, r := range rooms {
			if r.Intersects(room) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		room.ForEach(func(p core.Point) {
			if p.X > 0 && p.X < cfg.Width-1 && p.Y > 0 && p.Y < cfg.Height-1 {
				m.SetTile(p, Floor)
			}
		})
		rooms = append(rooms, room)
	}

	if len(rooms) == 0 {
		return draft{m: m}
	}

	buildCorridors(m, rng, rooms)

	// First room hosts the player, the rest host one spawn each
	spawns := make([]core.Point, 0, len(rooms)-1)
	for _, r := range rooms[1:] {
		spawns = append(spawns, r.Center())
	}

	return draft{
		m:           m,
		rooms:       rooms,
		playerStart: rooms[0].Center(),
		spawns:      spawns,
	}
}

// buildCorridors links consecutive rooms in x-sorted centre order
// Each pair flips a coin for horizontal-then-vertical or vertical-then-horizontal
func buildCorridors(m *Map, rng *rand.Rand, rooms []core.Rect) {
	sorted := make([]core.Rect, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Center().X < sorted[j].Center().X
	})

	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1].Center()
		next := sorted[i].Center()
		if rng.Intn(2) == 1 {
			carveHorizontal(m, prev.X, next.X, prev.Y)
			carveVertical(m, prev.Y, next.Y, next.X)
		} else {
			carveVertical(m, prev.Y, next.Y, prev.X)
			carveHorizontal(m, prev.X, next.X, next.Y)
		}
	}
}

func carveHorizontal(m *Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(core.Point{X: x, Y: y}, Floor)
	}
}

func carveVertical(m *Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(core.Point{X: x, Y: y}, Floor)
	}
}
