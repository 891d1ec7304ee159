package tui

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/mmrkaic/iceburger/internal/core"
	"github.com/mmrkaic/iceburger/internal/engine"
	"github.com/mmrkaic/iceburger/internal/particles"
)

// Screen layout constants
const (
	boardX = 2 // left margin before the board frame
	boardY = 1 // top margin above the board frame
	cellW  = 2 // terminal columns per board cell

	boardFrameW = engine.Cols*cellW + 2
	boardFrameH = engine.Rows + 2

	sidebarGap = 2
	sidebarX   = boardX + boardFrameW + sidebarGap
	previewW   = 4*cellW + 2 // 4x4 piece mask plus border
	previewH   = 4 + 2

	minScreenW = sidebarX + previewW
	minScreenH = boardY + boardFrameH + 1 // board plus the help line
)

// hudFormat matches the classic desktop HUD line.
const hudFormat = "Score %d  Lines %d  Level %d"

// particleRamp maps spark brightness to a glyph, brightest first.
var particleRamp = [...]rune{'█', '▓', '▒', '░'}

// drawGame renders one frame into the screen buffer.
func (m Model) drawGame(snap engine.Snapshot) {
	m.screen.Clear()
	m.drawBoard(snap)
	m.drawPiece(snap.Current)
	m.drawParticles()
	m.drawSidebar(snap)
	m.drawOverlays(snap)
}

// drawBoard draws the board frame and all locked cells.
func (m Model) drawBoard(snap engine.Snapshot) {
	m.screen.DrawBox(boardX, boardY, boardFrameW, boardFrameH, m.theme.Frame)

	for y := 0; y < engine.Rows; y++ {
		for x := 0; x < engine.Cols; x++ {
			sx, sy := cellOrigin(x, y)
			cell := snap.Board[y][x]
			if cell.Filled {
				m.drawTile(sx, sy, cell.Flavor, m.tint(cell.Tint))
			} else {
				m.screen.SetCell(sx, sy, '·', m.theme.EmptyCell)
			}
		}
	}
}

// drawPiece draws the falling piece onto the board interior.
func (m Model) drawPiece(p engine.Piece) {
	for r := range 4 {
		for c := range 4 {
			if !p.Mask[r][c] {
				continue
			}
			by := p.Y + r
			if by < 0 {
				continue
			}
			sx, sy := cellOrigin(p.X+c, by)
			m.drawTile(sx, sy, p.Flavor, m.tint(p.Tint))
		}
	}
}

// drawParticles overlays live sparks on the board. Spark positions are
// in the board's pixel space; each character column covers half a tile.
func (m Model) drawParticles() {
	m.pool.Each(func(p *particles.Particle) {
		if p.X < 0 || p.X >= float64(engine.TilePx*engine.Cols) {
			return
		}
		if p.Y < 0 || p.Y >= float64(engine.TilePx*engine.Rows) {
			return
		}

		cx := boardX + 1 + int(p.X)/(engine.TilePx/cellW)
		cy := boardY + 1 + int(p.Y)/engine.TilePx

		alpha := p.Alpha()
		idx := core.Clamp(int((1-alpha)*float64(len(particleRamp))), 0, len(particleRamp)-1)
		m.screen.SetCell(cx, cy, particleRamp[idx], fadeToward(p.Color, m.theme.Background, 1-alpha))
	})
}

// drawSidebar draws the HUD line, a rule under it, and the next/hold
// preview panes.
func (m Model) drawSidebar(snap engine.Snapshot) {
	hud := fmt.Sprintf(hudFormat, snap.Score, snap.Lines, snap.Level)
	m.screen.DrawTextColored(sidebarX, boardY, hud, m.theme.HUD)
	m.screen.DrawHLine(sidebarX, boardY+1, previewW, '─', m.theme.Frame)

	nextY := boardY + 2
	m.screen.DrawTextColored(sidebarX, nextY, "NEXT", m.theme.Label)
	m.drawPreview(sidebarX, nextY+1, snap.Next, true)

	holdY := nextY + 1 + previewH + 1
	m.screen.DrawTextColored(sidebarX, holdY, "HOLD", m.theme.Label)
	m.drawPreview(sidebarX, holdY+1, snap.Held, snap.HasHeld)
}

// drawPreview draws a bordered 4x4 piece pane. The piece is drawn only
// when present; the hold pane stays empty until first use.
func (m Model) drawPreview(x, y int, p engine.Piece, show bool) {
	m.screen.DrawBox(x, y, previewW, previewH, m.theme.Frame)
	if !show {
		return
	}
	for r := range 4 {
		for c := range 4 {
			if !p.Mask[r][c] {
				continue
			}
			m.drawTile(x+1+c*cellW, y+1+r, p.Flavor, m.tint(p.Tint))
		}
	}
}

// drawOverlays draws the pause and game over banners. Game over wins
// when both flags are set.
func (m Model) drawOverlays(snap engine.Snapshot) {
	if snap.GameOver {
		m.drawBanner("GAME OVER (R to restart)")
		return
	}
	if snap.Paused {
		m.drawBanner("PAUSED (P)")
	}
}

// drawBanner centers a boxed message over the board.
func (m Model) drawBanner(text string) {
	w := len(text) + 4
	h := 3
	x := (m.screen.Width() - w) / 2
	y := boardY + boardFrameH/2 - 1

	m.screen.FillBox(x, y, w, h)
	m.screen.DrawBox(x, y, w, h, m.theme.Overlay)
	m.screen.DrawTextColored(x+2, y+1, text, m.theme.Overlay)
}

// drawTooSmall replaces the frame with a resize hint.
func (m Model) drawTooSmall() {
	m.screen.Clear()
	msg := fmt.Sprintf("Window too small: need %dx%d", minScreenW, minScreenH)
	m.screen.DrawTextCentered(m.screen.Height()/2, msg, m.theme.Overlay)
}

// drawTile draws one board cell, two terminal columns wide. Emoji
// glyphs are double-width and occupy both columns on their own.
func (m Model) drawTile(x, y int, flavor engine.Flavor, tint core.Color) {
	l, r := m.tiles.IceLeft, m.tiles.IceRight
	if flavor == engine.FlavorBurger {
		l, r = m.tiles.BurgerLeft, m.tiles.BurgerRight
	}

	if runewidth.RuneWidth(l) == 2 {
		m.screen.SetWide(x, y, l, tint)
		return
	}
	m.screen.SetCell(x, y, l, tint)
	m.screen.SetCell(x+1, y, r, tint)
}

// tint maps a piece tint index to the theme palette.
func (m Model) tint(idx int) core.Color {
	return m.theme.Tints[core.Clamp(idx, 0, len(m.theme.Tints)-1)]
}

// cellOrigin converts board coordinates to the screen position of the
// cell's left character.
func cellOrigin(x, y int) (int, int) {
	return boardX + 1 + x*cellW, boardY + 1 + y
}

// fadeToward blends a spark color toward the background as it ages.
func fadeToward(c color.RGBA, bg core.Color, t float64) core.Color {
	from := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	to := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	r, g, b := from.BlendRgb(to, core.ClampF(t, 0, 1)).RGB255()
	return core.NewColor(r, g, b)
}
