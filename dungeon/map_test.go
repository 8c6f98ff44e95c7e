package dungeon

import (
	"testing"

	"github.com/lixenwraith/vi-crawler/core"
)

func TestIndexPointBijection(t *testing.T) {
	m := NewMap(7, 4)
	for idx := range m.Tiles {
		if got := m.Index(m.Point(idx)); got != idx {
			t.Fatalf("Index(Point(%d)) = %d", idx, got)
		}
	}
	if m.Index(core.Pt(3, 2)) != 17 {
		t.Errorf("row-major encoding expected 17, got %d", m.Index(core.Pt(3, 2)))
	}
}

func TestCanEnter(t *testing.T) {
	m := NewMap(5, 5)
	m.SetTile(core.Pt(1, 1), Floor)
	m.SetTile(core.Pt(2, 1), Exit)

	tests := []struct {
		name string
		p    core.Point
		want bool
	}{
		{"floor", core.Pt(1, 1), true},
		{"exit", core.Pt(2, 1), true},
		{"wall", core.Pt(3, 1), false},
		{"out of bounds", core.Pt(-1, 1), false},
		{"past edge", core.Pt(5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.CanEnter(tt.p); got != tt.want {
				t.Errorf("CanEnter(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRevealLatch(t *testing.T) {
	m := NewMap(3, 3)
	p := core.Pt(1, 1)
	if m.IsRevealed(p) {
		t.Fatal("fresh map must be unrevealed")
	}
	m.Reveal(p)
	m.Reveal(core.Pt(9, 9)) // Ignored
	if !m.IsRevealed(p) {
		t.Error("revealed flag must latch")
	}
	m.RevealAll()
	if !m.IsRevealed(core.Pt(0, 0)) {
		t.Error("RevealAll must reveal every tile")
	}
	if m.TileAt(core.Pt(-3, 0)) != Wall {
		t.Error("out-of-bounds tiles read as wall")
	}
}
