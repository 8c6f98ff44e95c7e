package dungeon

import "github.com/lixenwraith/vi-crawler/core"

// TileType is the terrain of one grid cell
type TileType uint8

const (
	Wall TileType = iota
	Floor
	Exit
)

func (t TileType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Map is a fixed-size row-major tile grid with a one-way revealed latch per tile
type Map struct {
	Width, Height int
	Tiles         []TileType
	revealed      []bool
}

// NewMap creates a map filled with walls
func NewMap(width, height int) *Map {
	m := &Map{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileType, width*height),
		revealed: make([]bool, width*height),
	}
	m.Fill(Wall)
	return m
}

// Bounds returns the map dimensions
func (m *Map) Bounds() (int, int) {
	return m.Width, m.Height
}

// InBounds reports whether p lies on the grid
func (m *Map) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// CanEnter is the single movement and pathfinding legality rule
func (m *Map) CanEnter(p core.Point) bool {
	if !m.InBounds(p) {
		return false
	}
	t := m.Tiles[m.Index(p)]
	return t == Floor || t == Exit
}

// Index encodes p row-major; callers must bounds-check or use TryIndex
func (m *Map) Index(p core.Point) int {
	return p.Y*m.Width + p.X
}

// TryIndex returns the index of p if it is in bounds
func (m *Map) TryIndex(p core.Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.Index(p), true
}

// Point decodes a row-major index
func (m *Map) Point(idx int) core.Point {
	return core.Point{X: idx % m.Width, Y: idx / m.Width}
}

// TileAt returns the tile at p, Wall when out of bounds
func (m *Map) TileAt(p core.Point) TileType {
	idx, ok := m.TryIndex(p)
	if !ok {
		return Wall
	}
	return m.Tiles[idx]
}

// SetTile writes t at p, ignoring out-of-bounds points
func (m *Map) SetTile(p core.Point, t TileType) {
	if idx, ok := m.TryIndex(p); ok {
		m.Tiles[idx] = t
	}
}

// Fill sets every tile to t
func (m *Map) Fill(t TileType) {
	for i := range m.Tiles {
		m.Tiles[i] = t
	}
}

// Count returns how many tiles have type t
func (m *Map) Count(t TileType) int {
	n := 0
	for _, tile := range m.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Reveal latches p as revealed
func (m *Map) Reveal(p core.Point) {
	if idx, ok := m.TryIndex(p); ok {
		m.revealed[idx] = true
	}
}

// IsRevealed reports whether p has ever been seen
func (m *Map) IsRevealed(p core.Point) bool {
	idx, ok := m.TryIndex(p)
	return ok && m.revealed[idx]
}

// RevealAll latches every tile (magic map)
func (m *Map) RevealAll() {
	for i := range m.revealed {
		m.revealed[i] = true
	}
}

// BlocksSight reports whether p stops line of sight
func (m *Map) BlocksSight(p core.Point) bool {
	return m.TileAt(p) == Wall
}
