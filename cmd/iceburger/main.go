// iceburger is a falling-block puzzle game for the terminal, where ice
// cream cones and burgers stack instead of plain bricks.
//
// Usage:
//
//	iceburger                  - Start the game
//
// Flags:
//
//	--fps <rate>      - Frame rate (default: 60)
//	--seed <value>    - RNG seed for reproducible games
//	--config <path>   - Custom settings YAML
//	--tiles <name>    - Tile set: emoji, blocks, ascii
//	--theme <name>    - Color theme: default, neon, mono
//	--no-effects      - Disable particle bursts
//	--debug-log <path> - Append session events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmrkaic/iceburger/internal/config"
	"github.com/mmrkaic/iceburger/internal/core"
	"github.com/mmrkaic/iceburger/internal/platform/tui"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagTheme     string
	flagTiles     string
	flagNoEffects bool
	flagDebugLog  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "iceburger",
	Short: "IceBurger - a falling-block puzzle in your terminal",
	Long: `IceBurger is a terminal rendition of the classic falling-block
puzzle: clear lines, chase levels, and watch the cleared rows burst
into sparks. Pieces come in two flavors, ice cream and burger.

Controls:
  Left/A, Right/D  - Move piece
  Down/S           - Soft drop
  Up/X             - Rotate clockwise
  Z                - Rotate counter-clockwise
  Space            - Hard drop
  C                - Hold piece
  P                - Pause
  R                - Restart
  ?                - Toggle help
  Q/Esc            - Quit

Examples:
  iceburger
  iceburger --tiles ascii --theme mono
  iceburger --seed 12345
  iceburger --config ./my-settings.yaml`,
	Run: runGame,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	rootCmd.Flags().StringVar(&flagTiles, "tiles", "", "Tile set: emoji, blocks, ascii")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: default, neon, mono")
	rootCmd.Flags().BoolVar(&flagNoEffects, "no-effects", false, "Disable particle bursts")
	rootCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Append session events to this file")
}

func runGame(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "iceburger",
	})

	settings, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("could not load settings", "error", err)
		os.Exit(1)
	}

	// Flags beat environment variables beat the settings file
	if flagTiles != "" {
		settings.UI.Tiles = flagTiles
	}
	if flagTheme != "" {
		settings.UI.Theme = flagTheme
	}
	if flagNoEffects {
		settings.Effects.Enabled = false
	}

	for _, note := range settings.Normalize() {
		logger.Warn(note)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.TickRate <= 0 {
		logger.Warn("invalid fps, using 60", "fps", cfg.TickRate)
		cfg.TickRate = 60
	}

	// The TUI owns the terminal once it starts, so session events go
	// to a file instead.
	var events *log.Logger
	if flagDebugLog != "" {
		f, fileErr := os.OpenFile(flagDebugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if fileErr != nil {
			logger.Error("could not open debug log", "path", flagDebugLog, "error", fileErr)
			os.Exit(1)
		}
		defer f.Close()

		events = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "iceburger",
		})
		events.SetLevel(log.DebugLevel)
		events.Debug("session start",
			"tiles", settings.UI.Tiles,
			"theme", settings.UI.Theme,
			"effects", settings.Effects.Enabled,
			"fps", cfg.TickRate,
			"seed", cfg.Seed,
		)
	}

	if err := tui.Run(cfg, settings, events); err != nil {
		logger.Error("error running game", "error", err)
		os.Exit(1)
	}
}
