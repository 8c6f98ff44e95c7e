// Package visibility computes line-of-sight field of view over a tile grid
package visibility

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/vi-crawler/core"
)

// Opacity answers sight queries; dungeon.Map satisfies it
type Opacity interface {
	InBounds(p core.Point) bool
	BlocksSight(p core.Point) bool
}

// Compute returns every in-bounds tile within Euclidean radius of origin whose line from origin
// crosses no sight-blocking tile before reaching it. A blocking tile that ends the line is itself
// visible, so walls bounding a room render. The result depends only on origin, radius and layout.
func Compute(o Opacity, origin core.Point, radius int) mapset.Set[core.Point] {
	visible := mapset.New[core.Point]()
	if radius < 0 || !o.InBounds(origin) {
		return visible
	}
	visible.Put(origin)

	rSq := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > rSq {
				continue
			}
			target := core.Point{X: origin.X + dx, Y: origin.Y + dy}
			if !o.InBounds(target) || visible.Has(target) {
				continue
			}
			if lineOfSight(o, origin, target) {
				visible.Put(target)
			}
		}
	}
	return visible
}

// lineOfSight traces a Bresenham line, failing on any blocking tile strictly between the ends
func lineOfSight(o Opacity, from, to core.Point) bool {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)
	err := dx + dy

	x, y := from.X, from.Y
	for {
		if x == to.X && y == to.Y {
			return true
		}
		if (x != from.X || y != from.Y) && o.BlocksSight(core.Point{X: x, Y: y}) {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
