// Package engine implements the IceBurger falling-block simulation:
// piece movement and rotation, collision and locking, line clears with
// scoring, and the gravity timer. It has no rendering or input code
// and no external dependencies, so the whole game is testable without
// a terminal.
package engine

import (
	"image/color"
	"math/rand"
	"time"
)

// Gravity and progression constants. The fall interval starts slow and
// tightens by a fixed step per level down to a floor.
const (
	startSpeedMs  = 900
	speedStepMs   = 70
	minSpeedMs    = 90
	linesPerLevel = 10
)

// clearScores is indexed by rows cleared in one lock. The award is
// multiplied by (level+1) using the level held before the clear counts.
var clearScores = [5]int{0, 40, 100, 300, 1200}

// kickOffsets are tried in order when a rotated piece collides; the
// first offset that fits wins and the rotation commits there.
var kickOffsets = [5][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, -1}, {0, 1}}

// burstColor seeds the particle burst spawned for each cleared row.
var burstColor = color.RGBA{R: 255, G: 200, B: 120, A: 255}

// BurstSpawner receives one burst request per cleared row. Coordinates
// are effect-space pixels at the cleared row's center.
type BurstSpawner interface {
	SpawnBurst(x, y float64, base color.RGBA)
}

// Game is the falling-block state machine. Commands arrive from a
// single goroutine; Game does no locking of its own. Piece commands on
// a paused or finished game are silent no-ops.
type Game struct {
	rng   *rand.Rand
	board Board

	cur     Piece
	next    Piece
	held    Piece
	hasHeld bool
	canHold bool

	score int
	lines int
	level int

	fallMs      int // current gravity interval
	fallAccumMs int // elapsed time not yet converted into steps

	gameOver bool
	paused   bool

	effects BurstSpawner
}

// New returns a running game seeded with seed. A nil spawner disables
// burst effects.
func New(seed int64, effects BurstSpawner) *Game {
	g := &Game{effects: effects}
	g.Reset(seed)
	return g
}

// Reset restarts the game: fresh board, fresh piece sequence, zeroed
// score and level, gravity back to the starting interval. Reset works
// in any state, including game over.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.board.Reset()
	g.cur = randomPiece(g.rng)
	g.next = randomPiece(g.rng)
	g.held = Piece{}
	g.hasHeld = false
	g.canHold = true
	g.score = 0
	g.lines = 0
	g.level = 0
	g.fallMs = startSpeedMs
	g.fallAccumMs = 0
	g.gameOver = false
	g.paused = false
}

// MoveLeft shifts the piece one column left if nothing blocks it.
func (g *Game) MoveLeft() {
	g.tryMove(-1, 0)
}

// MoveRight shifts the piece one column right if nothing blocks it.
func (g *Game) MoveRight() {
	g.tryMove(1, 0)
}

// tryMove translates the piece by (dx, dy) when the target position is
// free. It reports whether the move happened.
func (g *Game) tryMove(dx, dy int) bool {
	if g.gameOver || g.paused {
		return false
	}
	if g.board.Collides(g.cur, g.cur.X+dx, g.cur.Y+dy) {
		return false
	}
	g.cur.X += dx
	g.cur.Y += dy
	return true
}

// SoftStep advances the piece one row down, locking it when it cannot
// fall further. Gravity and the down key both go through here.
func (g *Game) SoftStep() {
	if g.gameOver || g.paused {
		return
	}
	if !g.board.Collides(g.cur, g.cur.X, g.cur.Y+1) {
		g.cur.Y++
		return
	}
	g.lockAndRespawn()
}

// HardDrop sends the piece straight to the floor and locks it.
func (g *Game) HardDrop() {
	if g.gameOver || g.paused {
		return
	}
	for !g.board.Collides(g.cur, g.cur.X, g.cur.Y+1) {
		g.cur.Y++
	}
	g.lockAndRespawn()
}

// RotateCW rotates the piece clockwise, kicking it into place if the
// raw rotation collides.
func (g *Game) RotateCW() {
	g.attemptRotate(true)
}

// RotateCCW rotates the piece counter-clockwise with the same kicks.
func (g *Game) RotateCCW() {
	g.attemptRotate(false)
}

// attemptRotate rotates a copy of the piece and tries each kick offset
// in order. The first collision-free offset commits; if none fits the
// piece is left untouched.
func (g *Game) attemptRotate(cw bool) {
	if g.gameOver || g.paused {
		return
	}
	t := g.cur
	if cw {
		t.RotateCW()
	} else {
		t.RotateCCW()
	}
	for _, k := range kickOffsets {
		if !g.board.Collides(t, t.X+k[0], t.Y+k[1]) {
			t.X += k[0]
			t.Y += k[1]
			g.cur = t
			return
		}
	}
}

// Hold stashes the current piece. The first hold spawns the next piece
// in its place; later holds swap with the stash. A swapped-in piece
// re-enters at the spawn position with whatever rotation it left with.
// One hold per spawn.
func (g *Game) Hold() {
	if g.gameOver || g.paused || !g.canHold {
		return
	}
	if !g.hasHeld {
		g.held = g.cur
		g.hasHeld = true
		g.spawnNext()
	} else {
		g.held, g.cur = g.cur, g.held
		g.cur.X = Cols/2 - 2
		g.cur.Y = 0
		if g.board.Collides(g.cur, g.cur.X, g.cur.Y) {
			g.gameOver = true
		}
	}
	g.canHold = false
}

// TogglePause flips the pause flag. It works on a finished game too,
// where the flag has no effect until Reset clears it.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Tick feeds elapsed wall time into gravity. Whole milliseconds
// accumulate; each time the accumulator covers the fall interval the
// piece soft-steps, repeatedly when a long frame spans several
// intervals. Ticking stops as soon as the game ends.
func (g *Game) Tick(elapsed time.Duration) {
	if g.gameOver || g.paused || elapsed <= 0 {
		return
	}
	g.fallAccumMs += int(elapsed.Milliseconds())
	for g.fallAccumMs >= g.fallMs && !g.gameOver {
		g.fallAccumMs -= g.fallMs
		g.SoftStep()
	}
}

// lockAndRespawn runs the whole lock sequence: stamp the piece, clear
// and score rows, bring in the next piece.
func (g *Game) lockAndRespawn() {
	g.board.Lock(g.cur)
	g.applyClears()
	g.spawnNext()
}

// applyClears clears full rows, fires one burst per cleared row, then
// applies scoring, line count, level and the new gravity interval.
func (g *Game) applyClears() {
	cleared, rows := g.board.ClearFullRows()
	if cleared == 0 {
		return
	}
	if g.effects != nil {
		for _, r := range rows {
			cx := float64(TilePx*Cols) / 2
			cy := float64(TilePx) * (float64(r) + 0.5)
			g.effects.SpawnBurst(cx, cy, burstColor)
		}
	}
	if cleared >= len(clearScores) {
		cleared = len(clearScores) - 1 // a single lock completes at most four rows
	}
	g.score += clearScores[cleared] * (g.level + 1)
	g.lines += cleared
	g.level = g.lines / linesPerLevel
	g.fallMs = max(minSpeedMs, startSpeedMs-g.level*speedStepMs)
}

// spawnNext promotes the queued piece and draws a fresh one. A spawn
// position that is already blocked ends the game.
func (g *Game) spawnNext() {
	g.cur = g.next
	g.next = randomPiece(g.rng)
	g.cur.X = Cols/2 - 2
	g.cur.Y = 0
	if g.board.Collides(g.cur, g.cur.X, g.cur.Y) {
		g.gameOver = true
	}
	g.canHold = true
}
