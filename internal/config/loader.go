package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load loads settings and applies environment overrides on top.
// Search order: customPath -> ~/.iceburger/settings.yaml -> ./settings.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	return cfg, nil
}

// loadFile resolves the settings file. A custom path must exist and
// parse; the fallback locations are tried best-effort.
func loadFile(customPath string) (Settings, error) {
	var cfg Settings

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("settings.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try working directory
	if data, err := os.ReadFile("settings.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".iceburger", filename)
}

// envOverrides mirrors the settings that can be flipped from the
// environment without touching a config file.
type envOverrides struct {
	Tiles     string `env:"ICEBURGER_TILES"`
	Theme     string `env:"ICEBURGER_THEME"`
	NoEffects bool   `env:"ICEBURGER_NO_EFFECTS"`
}

// applyEnv overlays ICEBURGER_* environment variables onto cfg.
// Unset variables leave the loaded values alone.
func applyEnv(cfg *Settings) error {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return err
	}
	if ov.Tiles != "" {
		cfg.UI.Tiles = ov.Tiles
	}
	if ov.Theme != "" {
		cfg.UI.Theme = ov.Theme
	}
	if ov.NoEffects {
		cfg.Effects.Enabled = false
	}
	return nil
}
