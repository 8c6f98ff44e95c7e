package navigation

import (
	"testing"

	"github.com/lixenwraith/vi-crawler/core"
)

// stringGrid treats '#' as blocked
type stringGrid []string

func (g stringGrid) Bounds() (int, int) { return len(g[0]), len(g) }

func (g stringGrid) CanEnter(p core.Point) bool {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[0]) {
		return false
	}
	return g[p.Y][p.X] != '#'
}

var corridor = stringGrid{
	"#######",
	"#.....#",
	"#.###.#",
	"#.#.#.#",
	"#######",
}

func TestComputeCardinalDistances(t *testing.T) {
	f := Compute(corridor, 100, core.Pt(1, 1))

	tests := []struct {
		p    core.Point
		want int
	}{
		{core.Pt(1, 1), 0},
		{core.Pt(5, 1), 4},
		{core.Pt(1, 3), 2},
		{core.Pt(5, 3), 6},
		{core.Pt(3, 3), Unreachable}, // Enclosed pocket
		{core.Pt(0, 0), Unreachable}, // Wall
		{core.Pt(-1, 0), Unreachable},
	}
	for _, tt := range tests {
		if got := f.At(tt.p); got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestMaxDepthCutoff(t *testing.T) {
	f := Compute(corridor, 2, core.Pt(1, 1))
	if f.At(core.Pt(3, 1)) != 2 {
		t.Errorf("expected distance 2 at cutoff, got %d", f.At(core.Pt(3, 1)))
	}
	if f.Reachable(core.Pt(4, 1)) {
		t.Error("cell beyond cutoff must be unreachable")
	}
}

func TestDistanceMonotonicAlongPath(t *testing.T) {
	f := Compute(corridor, 100, core.Pt(1, 3))
	p := core.Pt(5, 3)
	prev := f.At(p)
	for prev > 0 {
		next, ok := f.DownhillNeighbor(p)
		if !ok {
			t.Fatalf("no downhill neighbour from %v at distance %d", p, prev)
		}
		if d := f.At(next); d != prev-1 {
			t.Fatalf("distance must drop by exactly one per step, %d -> %d", prev, d)
		}
		p, prev = next, f.At(next)
	}
	if p != core.Pt(1, 3) {
		t.Errorf("descent should end at the source, ended at %v", p)
	}
}

func TestDownhillTieBreakOrder(t *testing.T) {
	open := stringGrid{
		".....",
		".....",
		".....",
	}
	// Two sources make west and north equally close for (2,1)
	f := Compute(open, 100, core.Pt(1, 1), core.Pt(2, 0))
	next, ok := f.DownhillNeighbor(core.Pt(2, 1))
	if !ok {
		t.Fatal("expected a downhill neighbour")
	}
	if next != core.Pt(1, 1) {
		t.Errorf("west must win ties, got %v", next)
	}

	if _, ok := f.DownhillNeighbor(core.Pt(1, 1)); ok {
		t.Error("source has no strictly smaller neighbour")
	}
}

func TestMostDistantLowestIndexTie(t *testing.T) {
	open := stringGrid{
		"...",
		"...",
		"...",
	}
	// From the centre every corner is distance 2
	f := Compute(open, 100, core.Pt(1, 1))
	p, ok := f.MostDistant()
	if !ok {
		t.Fatal("expected a most distant point")
	}
	if p != core.Pt(0, 0) {
		t.Errorf("expected lowest index corner (0,0), got %v", p)
	}
}

func TestRecomputeReusesBuffers(t *testing.T) {
	f := NewDistanceField(7, 5, 100)
	f.Compute(corridor, core.Pt(1, 1))
	first := f.At(core.Pt(5, 3))
	f.Compute(corridor, core.Pt(5, 3))
	if f.At(core.Pt(5, 3)) != 0 {
		t.Error("recompute must reset previous distances")
	}
	if f.At(core.Pt(1, 1)) != first {
		t.Errorf("symmetric distance expected %d, got %d", first, f.At(core.Pt(1, 1)))
	}
	f.Resize(7, 5)
	if f.Reachable(core.Pt(5, 3)) {
		t.Error("resized field reports nothing reachable before recompute")
	}
}

func TestReachableCountSkipsPockets(t *testing.T) {
	f := Compute(corridor, 100, core.Pt(1, 1))
	if n := f.ReachableCount(); n != 9 {
		t.Errorf("reachable %d, want 9", n)
	}
	if n := Compute(corridor, 2, core.Pt(1, 1)).ReachableCount(); n != 5 {
		t.Errorf("depth-limited reachable %d, want 5", n)
	}
}
