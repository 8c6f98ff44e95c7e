package component

import "github.com/lixenwraith/vi-crawler/core"

// PositionComponent places an entity on the map
// Carried items keep no position
type PositionComponent struct {
	core.Point
}
