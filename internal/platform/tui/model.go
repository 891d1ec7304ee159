package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/mmrkaic/iceburger/internal/config"
	"github.com/mmrkaic/iceburger/internal/core"
	"github.com/mmrkaic/iceburger/internal/engine"
	"github.com/mmrkaic/iceburger/internal/particles"
)

// Model is the Bubble Tea model running the game.
type Model struct {
	game     *engine.Game
	pool     *particles.Pool
	screen   *core.Screen
	keys     GameKeyMap
	help     help.Model
	theme    Theme
	tiles    TileSet
	config   core.RuntimeConfig
	events   *log.Logger
	lastTick time.Time
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model from runtime config and settings.
// A nil events logger disables the session event log.
func NewModel(cfg core.RuntimeConfig, settings config.Settings, events *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	pool := particles.New(particles.DefaultCapacity, cfg.Seed)

	// The engine only spawns bursts through the spawner it was given,
	// so disabling effects is a matter of not wiring the pool in.
	var spawner engine.BurstSpawner
	if settings.Effects.Enabled {
		spawner = pool
	}

	return Model{
		game:   engine.New(cfg.Seed, spawner),
		pool:   pool,
		screen: core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		theme:  ThemeByName(settings.UI.Theme),
		tiles:  TilesByName(settings.UI.Tiles),
		config: cfg,
		events: events,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Game commands apply immediately;
// the engine ignores whatever its current state does not allow.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	prev := m.game.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		m.game.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.game.MoveRight()
	case key.Matches(msg, m.keys.SoftDrop):
		m.game.SoftStep()
	case key.Matches(msg, m.keys.HardDrop):
		m.game.HardDrop()
	case key.Matches(msg, m.keys.RotateCW):
		m.game.RotateCW()
	case key.Matches(msg, m.keys.RotateCCW):
		m.game.RotateCCW()
	case key.Matches(msg, m.keys.Hold):
		m.game.Hold()
	case key.Matches(msg, m.keys.Pause):
		m.game.TogglePause()

	case key.Matches(msg, m.keys.Restart):
		// Fresh seed for the new run, sparks from the old one cleared
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config.Seed)
		m.pool.Reset()
		if m.events != nil {
			m.events.Debug("game restarted", "seed", m.config.Seed)
		}
	}

	m.logEvents(prev)
	return m, nil
}

// handleResize tracks the window size. The simulation is untouched:
// the board has fixed dimensions, only the frame around it moves.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1)) // last line is the help bar
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the simulation by the real time elapsed since
// the previous frame. Sparks keep animating while the game is paused
// or over; gravity is gated inside the engine.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	if !m.lastTick.IsZero() {
		elapsed := now.Sub(m.lastTick)
		prev := m.game.Snapshot()
		m.game.Tick(elapsed)
		m.pool.Update(elapsed.Seconds())
		m.logEvents(prev)
	}
	m.lastTick = now

	return m, tickCmd(m.config.TickRate)
}

// logEvents compares the game state before and after a command and
// writes one debug entry per observed event.
func (m Model) logEvents(prev engine.Snapshot) {
	if m.events == nil {
		return
	}
	snap := m.game.Snapshot()

	cleared := snap.Lines - prev.Lines
	locks := (filledCells(snap.Board) - filledCells(prev.Board) + cleared*engine.Cols) / 4
	switch {
	case locks == 1:
		m.events.Debug("piece locked", "kind", prev.Current.Kind)
	case locks > 1:
		// A long tick can step through more than one lock.
		m.events.Debug("pieces locked", "count", locks)
	}
	if cleared > 0 {
		m.events.Debug("rows cleared", "rows", cleared, "lines", snap.Lines, "score", snap.Score)
	}
	if snap.Level > prev.Level {
		m.events.Debug("level up", "level", snap.Level)
	}
	if snap.GameOver && !prev.GameOver {
		m.events.Debug("game over", "score", snap.Score, "lines", snap.Lines)
	}
}

// filledCells counts occupied board cells. Every lock adds four and
// every cleared row removes a full row's worth, so the delta between
// two frames pins down how many pieces locked between them.
func filledCells(b [engine.Rows][engine.Cols]engine.Cell) int {
	n := 0
	for y := range engine.Rows {
		for x := range engine.Cols {
			if b[y][x].Filled {
				n++
			}
		}
	}
	return n
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.drawGame(m.game.Snapshot())

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".iceburger", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("iceburger_%s.txt", timestamp))

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width < minScreenW || m.height < minScreenH {
		m.drawTooSmall()
	} else {
		m.drawGame(m.game.Snapshot())
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given configuration. A
// nil events logger disables the session event log.
func Run(cfg core.RuntimeConfig, settings config.Settings, events *log.Logger) error {
	model := NewModel(cfg, settings, events)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
