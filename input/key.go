// Package input defines the discrete key events the host feeds the simulation once per tick
package input

// Key is one logical key press; the core never polls devices
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyWait
	KeyConfirm
	KeyQuit
)

var keyNames = [...]string{
	KeyNone:    "none",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyWait:    "wait",
	KeyConfirm: "confirm",
	KeyQuit:    "quit",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// IsDirection reports whether k is one of the four movement keys
func (k Key) IsDirection() bool {
	return k >= KeyUp && k <= KeyRight
}

// Delta returns the grid step for a direction key
func (k Key) Delta() (dx, dy int) {
	switch k {
	case KeyUp:
		return 0, -1
	case KeyDown:
		return 0, 1
	case KeyLeft:
		return -1, 0
	case KeyRight:
		return 1, 0
	}
	return 0, 0
}
