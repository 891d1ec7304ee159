package core

import (
	"strings"
)

// Cell is one character cell: a rune plus its foreground color. A zero
// Rune marks the continuation of a double-width rune in the cell to
// its left; renderers emit nothing for it.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D cell buffer for rendering game graphics. It decouples
// drawing from the terminal: views write runes and colors, the
// platform turns the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in character cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in character cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where
// possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Fill fills the entire screen with the given rune, unstyled.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// Set places an unstyled rune at the given position. Out-of-bounds
// coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, Color{})
}

// SetCell places a rune with a foreground color. Out-of-bounds
// coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// SetWide places a double-width rune: the rune at x, a continuation
// marker at x+1. The caller decides which runes are wide.
func (s *Screen) SetWide(x, y int, r rune, c Color) {
	s.SetCell(x, y, r, c)
	if x+1 < s.width {
		s.SetCell(x+1, y, 0, c)
	}
}

// Get returns the rune at the given position, space when out of
// bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position. Out-of-bounds
// coordinates return an unstyled space.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes an unstyled string horizontally starting at (x, y).
// Characters beyond the screen edge are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, Color{})
}

// DrawTextColored writes a string in the given color.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetCell(x+i, y, r, c)
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int, c Color) {
	if w < 2 || h < 2 {
		return
	}

	s.SetCell(x, y, '┌', c)
	s.SetCell(x+w-1, y, '┐', c)
	s.SetCell(x, y+h-1, '└', c)
	s.SetCell(x+w-1, y+h-1, '┘', c)

	for i := x + 1; i < x+w-1; i++ {
		s.SetCell(i, y, '─', c)
		s.SetCell(i, y+h-1, '─', c)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.SetCell(x, j, '│', c)
		s.SetCell(x+w-1, j, '│', c)
	}
}

// FillBox fills the interior of a box with unstyled spaces, clearing
// whatever was drawn underneath.
func (s *Screen) FillBox(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			s.Set(i, j, ' ')
		}
	}
}

// String converts the buffer to a plain string, one line per row.
// Continuation cells of wide runes are skipped so columns line up.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			if r := s.cells[y][x].Rune; r != 0 {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// Row returns the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		if r := s.cells[y][x].Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
