package engine

import "github.com/lixenwraith/vi-crawler/core"

// Camera is the viewport into the map, centred on the player
type Camera struct {
	Left, Top     int
	Width, Height int
}

// NewCamera creates a viewport centred on focus
func NewCamera(focus core.Point, width, height int) *Camera {
	c := &Camera{Width: width, Height: height}
	c.Focus(focus)
	return c
}

// Focus recentres on p
func (c *Camera) Focus(p core.Point) {
	c.Left = p.X - c.Width/2
	c.Top = p.Y - c.Height/2
}

// Contains reports whether map point p is inside the viewport
func (c *Camera) Contains(p core.Point) bool {
	return core.Rect{X: c.Left, Y: c.Top, Width: c.Width, Height: c.Height}.Contains(p)
}

// ToScreen converts a map point to viewport coordinates
func (c *Camera) ToScreen(p core.Point) core.Point {
	return p.Sub(core.Point{X: c.Left, Y: c.Top})
}
