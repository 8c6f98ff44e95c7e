package dungeon

import "math/rand"

// Theme picks the tile set a level is drawn with; the set is closed
type Theme uint8

const (
	DungeonTheme Theme = iota
	ForestTheme
	themeCount
)

// Themes lists every theme in selection order
var Themes = [themeCount]Theme{DungeonTheme, ForestTheme}

func (t Theme) String() string {
	switch t {
	case DungeonTheme:
		return "dungeon"
	case ForestTheme:
		return "forest"
	default:
		return "unknown"
	}
}

// RandomTheme picks uniformly among themes
func RandomTheme(rng *rand.Rand) Theme {
	return Themes[rng.Intn(len(Themes))]
}
