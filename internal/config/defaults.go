package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings, used when no config
// file exists and the embedded default fails to parse.
func DefaultSettings() Settings {
	return Settings{
		UI: UISettings{
			Tiles: TilesEmoji,
			Theme: ThemeDefault,
		},
		Effects: EffectsSettings{
			Enabled: true,
		},
	}
}
