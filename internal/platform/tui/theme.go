package tui

import (
	"github.com/mmrkaic/iceburger/internal/config"
	"github.com/mmrkaic/iceburger/internal/core"
	"github.com/mmrkaic/iceburger/internal/engine"
)

// Theme contains all configurable colors for the game screen.
type Theme struct {
	// Chrome
	Background core.Color // fade target for particle sparks
	Frame      core.Color // board and preview pane borders
	EmptyCell  core.Color // dots marking empty board cells

	// Text
	HUD     core.Color // score line
	Label   core.Color // NEXT / HOLD captions
	Overlay core.Color // PAUSED / GAME OVER banners

	// Piece tints, indexed by the piece's tint value
	Tints [engine.KindCount]core.Color
}

// DefaultTheme returns the standard visual theme.
func DefaultTheme() Theme {
	return Theme{
		Background: core.NewColor(20, 24, 28),
		Frame:      core.NewColor(90, 100, 110),
		EmptyCell:  core.NewColor(45, 52, 60),
		HUD:        core.NewColor(220, 230, 240),
		Label:      core.NewColor(150, 160, 170),
		Overlay:    core.NewColor(220, 230, 240),
		Tints: [engine.KindCount]core.Color{
			core.NewColor(45, 212, 191),  // I - teal
			core.NewColor(250, 204, 21),  // O - gold
			core.NewColor(192, 132, 252), // T - purple
			core.NewColor(74, 222, 128),  // S - green
			core.NewColor(251, 113, 133), // Z - rose
			core.NewColor(96, 165, 250),  // J - blue
			core.NewColor(245, 158, 11),  // L - amber
		},
	}
}

// NeonTheme returns a high-saturation variant.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Frame = core.NewColor(0, 200, 255)
	theme.HUD = core.NewColor(255, 255, 255)
	theme.Tints = [engine.KindCount]core.Color{
		core.NewColor(34, 255, 221), // I
		core.NewColor(255, 230, 0),  // O
		core.NewColor(221, 85, 255), // T
		core.NewColor(57, 255, 20),  // S
		core.NewColor(255, 49, 99),  // Z
		core.NewColor(0, 170, 255),  // J
		core.NewColor(255, 170, 0),  // L
	}
	return theme
}

// MonoTheme returns a grayscale variant.
func MonoTheme() Theme {
	theme := DefaultTheme()
	theme.Frame = core.NewColor(120, 120, 120)
	theme.EmptyCell = core.NewColor(60, 60, 60)
	theme.HUD = core.NewColor(230, 230, 230)
	theme.Label = core.NewColor(150, 150, 150)
	theme.Overlay = core.NewColor(255, 255, 255)
	theme.Tints = [engine.KindCount]core.Color{
		core.NewColor(255, 255, 255),
		core.NewColor(235, 235, 235),
		core.NewColor(215, 215, 215),
		core.NewColor(195, 195, 195),
		core.NewColor(175, 175, 175),
		core.NewColor(155, 155, 155),
		core.NewColor(135, 135, 135),
	}
	return theme
}

// ThemeByName resolves a theme name from settings to a Theme.
// Unknown names fall back to the default theme.
func ThemeByName(name string) Theme {
	switch name {
	case config.ThemeNeon:
		return NeonTheme()
	case config.ThemeMono:
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

// TileSet holds the glyphs used for one board cell. A cell is two
// terminal columns wide: either a single double-width rune on the
// left, or a left/right rune pair.
type TileSet struct {
	IceLeft, IceRight       rune
	BurgerLeft, BurgerRight rune
}

// TilesByName resolves a tile set name from settings.
// Unknown names fall back to the emoji set.
func TilesByName(name string) TileSet {
	switch name {
	case config.TilesBlocks:
		return TileSet{
			IceLeft: '█', IceRight: '█',
			BurgerLeft: '█', BurgerRight: '█',
		}
	case config.TilesASCII:
		return TileSet{
			IceLeft: '[', IceRight: ']',
			BurgerLeft: '(', BurgerRight: ')',
		}
	default:
		return TileSet{
			IceLeft: '🍦', IceRight: ' ',
			BurgerLeft: '🍔', BurgerRight: ' ',
		}
	}
}
