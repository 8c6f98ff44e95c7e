package navigation

import (
	"math"

	"github.com/lixenwraith/vi-crawler/core"
)

// Unreachable is the distance sentinel for cells that cannot be reached within MaxDepth
const Unreachable = math.MaxInt32

// Grid is the walkability surface a distance field expands over
type Grid interface {
	Bounds() (width, height int)
	CanEnter(p core.Point) bool
}

// DistanceField stores cardinal step distances from one or more source cells (Dijkstra map)
type DistanceField struct {
	Width, Height int
	MaxDepth      int   // Propagation cutoff, cells farther than this stay Unreachable
	Distances     []int // Row-major, Unreachable if blocked or beyond cutoff

	// Valid is false until the first Compute and after Resize
	Valid bool

	// Reusable BFS queue to reduce allocations across recomputes
	queue []int
}

// NewDistanceField creates an empty field for the given dimensions
func NewDistanceField(width, height, maxDepth int) *DistanceField {
	size := width * height
	f := &DistanceField{
		Width:     width,
		Height:    height,
		MaxDepth:  maxDepth,
		Distances: make([]int, size),
		queue:     make([]int, 0, size/4),
	}
	f.reset()
	return f
}

// Compute builds a field over g rooted at sources
func Compute(g Grid, maxDepth int, sources ...core.Point) *DistanceField {
	w, h := g.Bounds()
	f := NewDistanceField(w, h, maxDepth)
	f.Compute(g, sources...)
	return f
}

// Resize adjusts field dimensions, invalidates cache
func (f *DistanceField) Resize(width, height int) {
	size := width * height
	if cap(f.Distances) < size {
		f.Distances = make([]int, size)
	} else {
		f.Distances = f.Distances[:size]
	}
	f.Width = width
	f.Height = height
	f.Valid = false
}

func (f *DistanceField) reset() {
	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}
}

// Compute performs a breadth-first expansion from sources over enterable cells
// Every edge costs 1, so BFS order equals Dijkstra order; diagonal steps are never taken
// Sources that cannot be entered are still seeded, the field expands from them
func (f *DistanceField) Compute(g Grid, sources ...core.Point) {
	if w, h := g.Bounds(); w != f.Width || h != f.Height {
		f.Resize(w, h)
	}
	f.reset()

	w := f.Width
	f.queue = f.queue[:0]
	for _, s := range sources {
		if s.X < 0 || s.Y < 0 || s.X >= f.Width || s.Y >= f.Height {
			continue
		}
		idx := s.Y*w + s.X
		if f.Distances[idx] == 0 {
			continue
		}
		f.Distances[idx] = 0
		f.queue = append(f.queue, idx)
	}

	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		dist := f.Distances[idx]
		if dist >= f.MaxDepth {
			continue
		}
		cur := core.Point{X: idx % w, Y: idx / w}

		for _, d := range core.Cardinals {
			n := cur.Add(d)
			if !g.CanEnter(n) {
				continue
			}
			nIdx := n.Y*w + n.X
			if f.Distances[nIdx] != Unreachable {
				continue
			}
			f.Distances[nIdx] = dist + 1
			f.queue = append(f.queue, nIdx)
		}
	}

	f.Valid = true
}

// At returns the distance at p, Unreachable if out of bounds or not reached
func (f *DistanceField) At(p core.Point) int {
	if !f.Valid || p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
		return Unreachable
	}
	return f.Distances[p.Y*f.Width+p.X]
}

// Reachable reports whether p has a finite distance
func (f *DistanceField) Reachable(p core.Point) bool {
	return f.At(p) != Unreachable
}

// DownhillNeighbor returns the cardinal neighbour of p with the strictly smallest distance that is
// also strictly less than the distance at p. Ties resolve in core.Cardinals order (W, E, N, S).
func (f *DistanceField) DownhillNeighbor(p core.Point) (core.Point, bool) {
	best := f.At(p)
	var bestPoint core.Point
	found := false
	for _, d := range core.Cardinals {
		n := p.Add(d)
		if dist := f.At(n); dist < best {
			best = dist
			bestPoint = n
			found = true
		}
	}
	return bestPoint, found
}

// MostDistant returns the reachable cell with the greatest distance
// Ties resolve to the lowest row-major index
func (f *DistanceField) MostDistant() (core.Point, bool) {
	bestIdx, bestDist := -1, -1
	for idx, d := range f.Distances {
		if d != Unreachable && d > bestDist {
			bestIdx, bestDist = idx, d
		}
	}
	if bestIdx < 0 {
		return core.Point{}, false
	}
	return core.Point{X: bestIdx % f.Width, Y: bestIdx / f.Width}, true
}

// ReachableCount returns the number of cells with a finite distance
func (f *DistanceField) ReachableCount() int {
	n := 0
	for _, d := range f.Distances {
		if d != Unreachable {
			n++
		}
	}
	return n
}
