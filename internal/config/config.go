// Package config provides YAML-based settings loading for the game:
// tile sets, color themes, and effect toggles, with environment
// variable overrides.
package config

import "fmt"

// Settings contains all user-tunable presentation options.
type Settings struct {
	UI      UISettings      `yaml:"ui"`
	Effects EffectsSettings `yaml:"effects"`
}

// UISettings selects how the board is drawn.
type UISettings struct {
	Tiles string `yaml:"tiles"` // "emoji", "blocks", or "ascii"
	Theme string `yaml:"theme"` // "default", "neon", or "mono"
}

// EffectsSettings toggles the particle bursts on line clears.
type EffectsSettings struct {
	Enabled bool `yaml:"enabled"`
}

// Tile set names accepted in settings, flags, and ICEBURGER_TILES.
const (
	TilesEmoji  = "emoji"
	TilesBlocks = "blocks"
	TilesASCII  = "ascii"
)

// Theme names accepted in settings, flags, and ICEBURGER_THEME.
const (
	ThemeDefault = "default"
	ThemeNeon    = "neon"
	ThemeMono    = "mono"
)

// Normalize coerces unknown or empty values to their defaults. It
// returns a note per correction so the caller can log them.
func (s *Settings) Normalize() []string {
	var notes []string

	switch s.UI.Tiles {
	case TilesEmoji, TilesBlocks, TilesASCII:
	case "":
		s.UI.Tiles = TilesEmoji
	default:
		notes = append(notes, fmt.Sprintf("unknown tile set %q, using %q", s.UI.Tiles, TilesEmoji))
		s.UI.Tiles = TilesEmoji
	}

	switch s.UI.Theme {
	case ThemeDefault, ThemeNeon, ThemeMono:
	case "":
		s.UI.Theme = ThemeDefault
	default:
		notes = append(notes, fmt.Sprintf("unknown theme %q, using %q", s.UI.Theme, ThemeDefault))
		s.UI.Theme = ThemeDefault
	}

	return notes
}
