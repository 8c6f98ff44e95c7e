package parameter

// Camera viewport in tiles, centred on the player
const (
	CameraViewWidth  = MapWidth / 2
	CameraViewHeight = MapHeight / 2
)

// Render
const (
	// RevealedDimFactor scales colours of revealed tiles outside the current view
	RevealedDimFactor = 0.35
)
