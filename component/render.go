package component

import "github.com/lixenwraith/vi-crawler/core"

// RenderComponent is the glyph and colour drawn on the actors layer
type RenderComponent struct {
	Glyph rune
	Fg    core.RGB
	Bg    core.RGB
}

// NameComponent is the display name used in the HUD and combat log
type NameComponent struct {
	Name string
}
