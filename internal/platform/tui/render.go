package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmrkaic/iceburger/internal/core"
)

// styleCache memoizes lipgloss styles per color. Rendering happens on
// the Bubble Tea update goroutine only, so plain map access is fine.
var styleCache = map[core.Color]lipgloss.Style{}

// styleFor returns the lipgloss style for a cell color.
func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c.IsSet() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences, and skips the continuation cells of double-width runes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			// Apply style to the run
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
