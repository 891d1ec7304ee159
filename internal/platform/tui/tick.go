// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of one frame. The model derives
// the elapsed time between frames from consecutive messages.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified frame rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
