package engine

import (
	"image/color"
	"testing"
	"time"
)

// burstRecorder captures SpawnBurst calls for assertions.
type burstRecorder struct {
	calls []burstCall
}

type burstCall struct {
	x, y float64
	base color.RGBA
}

func (b *burstRecorder) SpawnBurst(x, y float64, base color.RGBA) {
	b.calls = append(b.calls, burstCall{x: x, y: y, base: base})
}

func TestNewGameDefaults(t *testing.T) {
	g := New(42, nil)

	if g.score != 0 || g.lines != 0 || g.level != 0 {
		t.Errorf("fresh game has score=%d lines=%d level=%d, expected zeros", g.score, g.lines, g.level)
	}
	if g.fallMs != startSpeedMs {
		t.Errorf("fresh game fallMs = %d, expected %d", g.fallMs, startSpeedMs)
	}
	if g.gameOver || g.paused {
		t.Error("fresh game must not be over or paused")
	}
	if !g.canHold || g.hasHeld {
		t.Error("fresh game must allow holding and hold nothing")
	}
	if g.cur.X != Cols/2-2 || g.cur.Y != 0 {
		t.Errorf("current piece spawned at (%d, %d), expected (%d, 0)", g.cur.X, g.cur.Y, Cols/2-2)
	}
}

func TestMoveBlockedByWalls(t *testing.T) {
	g := New(1, nil)
	g.cur = NewPiece(KindJ, g.rng)

	// Walk to the left wall; one extra attempt must be rejected.
	for range Cols {
		g.MoveLeft()
	}
	if g.cur.X != 0 {
		t.Errorf("piece stopped at x=%d, expected 0", g.cur.X)
	}
	g.MoveLeft()
	if g.cur.X != 0 {
		t.Errorf("move into the left wall changed x to %d", g.cur.X)
	}

	// Same on the right: the J mask is three columns wide.
	for range Cols {
		g.MoveRight()
	}
	if g.cur.X != Cols-3 {
		t.Errorf("piece stopped at x=%d, expected %d", g.cur.X, Cols-3)
	}
}

func TestSoftStepLocksAtFloor(t *testing.T) {
	g := New(7, nil)

	// Every spawn mask has its lowest occupied row at mask row 1, so a
	// fresh piece reaches y=18 in 18 steps and the 19th locks it.
	for range Rows - 1 {
		g.SoftStep()
	}
	if got := countFilled(&g.board); got != 4 {
		t.Fatalf("board has %d filled cells, expected one locked tetromino", got)
	}
	if g.cur.Y != 0 {
		t.Errorf("respawned piece at y=%d, expected 0", g.cur.Y)
	}
}

func TestHardDropLocksImmediately(t *testing.T) {
	g := New(7, nil)

	g.HardDrop()
	if got := countFilled(&g.board); got != 4 {
		t.Errorf("board has %d filled cells after hard drop, expected 4", got)
	}
	if g.cur.X != Cols/2-2 || g.cur.Y != 0 {
		t.Errorf("next piece at (%d, %d), expected spawn position", g.cur.X, g.cur.Y)
	}
	if !g.canHold {
		t.Error("hold must be re-armed after a lock")
	}
}

func TestScoringPerClearCount(t *testing.T) {
	tests := []struct {
		rows  int
		score int
	}{
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
	}

	for _, tt := range tests {
		var g Game
		g.Reset(1)
		for r := Rows - tt.rows; r < Rows; r++ {
			fillRow(&g.board, r)
		}
		g.applyClears()
		if g.score != tt.score {
			t.Errorf("clearing %d rows scored %d, expected %d", tt.rows, g.score, tt.score)
		}
		if g.lines != tt.rows {
			t.Errorf("clearing %d rows counted %d lines", tt.rows, g.lines)
		}
	}
}

func TestScoringUsesLevelBeforeUpdate(t *testing.T) {
	var g Game
	g.Reset(1)

	// One line away from level 1: the clear that crosses the boundary
	// still pays out at the old level's multiplier.
	g.lines = 9
	fillRow(&g.board, Rows-1)
	g.applyClears()

	if g.score != 40 {
		t.Errorf("boundary clear scored %d, expected 40 (level 0 multiplier)", g.score)
	}
	if g.level != 1 {
		t.Errorf("level = %d after ten lines, expected 1", g.level)
	}
	if g.fallMs != startSpeedMs-speedStepMs {
		t.Errorf("fallMs = %d at level 1, expected %d", g.fallMs, startSpeedMs-speedStepMs)
	}
}

func TestScoringScalesWithLevel(t *testing.T) {
	var g Game
	g.Reset(1)

	g.lines = 30 // level 3
	g.level = 3
	fillRow(&g.board, Rows-1)
	g.applyClears()

	if g.score != 40*4 {
		t.Errorf("single clear at level 3 scored %d, expected %d", g.score, 40*4)
	}
}

func TestSpeedFloor(t *testing.T) {
	// Level 11 is the last interval above the floor; from level 12 on
	// the interval pins at minSpeedMs.
	tests := []struct {
		lines  int // before the single clear
		fallMs int
	}{
		{9, 830},          // level 1
		{109, 130},        // level 11
		{119, minSpeedMs}, // level 12 hits the floor
		{199, minSpeedMs}, // deep past the floor
	}
	for _, tt := range tests {
		var g Game
		g.Reset(1)
		g.lines = tt.lines
		g.level = tt.lines / linesPerLevel
		fillRow(&g.board, Rows-1)
		g.applyClears()
		if g.fallMs != tt.fallMs {
			t.Errorf("%d lines: fallMs = %d, expected %d", tt.lines+1, g.fallMs, tt.fallMs)
		}
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := New(99, nil)
	prevScore, prevLines := 0, 0
	for i := 0; i < 60 && !g.gameOver; i++ {
		switch i % 4 {
		case 0:
			g.MoveLeft()
		case 1:
			g.RotateCW()
		case 2:
			g.MoveRight()
		}
		g.HardDrop()
		if g.score < prevScore {
			t.Fatalf("score decreased from %d to %d", prevScore, g.score)
		}
		if g.lines < prevLines {
			t.Fatalf("line count decreased from %d to %d", prevLines, g.lines)
		}
		prevScore, prevLines = g.score, g.lines
	}
}

func TestRotationKickPrefersInPlace(t *testing.T) {
	g := New(1, nil)
	g.cur = NewPiece(KindI, g.rng)
	g.cur.X, g.cur.Y = 3, 5

	g.RotateCW()
	if g.cur.X != 3 || g.cur.Y != 5 {
		t.Errorf("unobstructed rotation moved the piece to (%d, %d)", g.cur.X, g.cur.Y)
	}
}

func TestRotationKickCommitsFirstFreeOffset(t *testing.T) {
	g := New(1, nil)
	g.cur = NewPiece(KindI, g.rng)
	g.cur.X, g.cur.Y = 3, 5

	// A clockwise I becomes a vertical bar in mask column 2, here
	// board column 5, rows 5-8. Blocking (5, 5) fails the in-place
	// offset and the (0,-1) kick; (1, 0) is the first free offset.
	fillCell(&g.board, 5, 5, 1)

	g.RotateCW()
	if g.cur.X != 4 || g.cur.Y != 5 {
		t.Errorf("kicked rotation ended at (%d, %d), expected (4, 5)", g.cur.X, g.cur.Y)
	}
	var wantMask Mask
	for r := range 4 {
		wantMask[r][2] = true
	}
	if g.cur.Mask != wantMask {
		t.Error("rotation must commit the rotated mask together with the kick")
	}
}

func TestRotationRejectedWhenNoOffsetFits(t *testing.T) {
	g := New(1, nil)
	g.cur = NewPiece(KindI, g.rng)
	g.cur.X, g.cur.Y = 3, 5
	before := g.cur

	// Block the vertical bar at every kick offset: in place and the
	// four shifted positions.
	fillCell(&g.board, 5, 5, 1) // in place and (0,-1)
	fillCell(&g.board, 6, 5, 1) // (1,0)
	fillCell(&g.board, 4, 5, 1) // (-1,0)
	fillCell(&g.board, 5, 8, 1) // (0,1)

	g.RotateCW()
	if g.cur != before {
		t.Errorf("fully blocked rotation changed the piece: %+v", g.cur)
	}
}

func TestHoldFirstUse(t *testing.T) {
	g := New(5, nil)
	curKind := g.cur.Kind
	nextKind := g.next.Kind

	g.Hold()
	if !g.hasHeld || g.held.Kind != curKind {
		t.Errorf("held piece kind = %s, expected %s", g.held.Kind, curKind)
	}
	if g.cur.Kind != nextKind {
		t.Errorf("current piece kind = %s, expected promoted %s", g.cur.Kind, nextKind)
	}
	if g.canHold {
		t.Error("hold must disarm until the next lock")
	}
}

func TestHoldOncePerSpawn(t *testing.T) {
	g := New(5, nil)

	g.Hold()
	afterFirst := g.cur
	g.Hold()
	if g.cur != afterFirst {
		t.Error("second hold before a lock must be ignored")
	}

	// A lock re-arms the hold and swaps with the stash.
	heldKind := g.held.Kind
	g.HardDrop()
	curKind := g.cur.Kind
	g.Hold()
	if g.cur.Kind != heldKind || g.held.Kind != curKind {
		t.Errorf("swap hold gave cur=%s held=%s, expected cur=%s held=%s",
			g.cur.Kind, g.held.Kind, heldKind, curKind)
	}
	if g.cur.X != Cols/2-2 || g.cur.Y != 0 {
		t.Error("swapped-in piece must re-enter at the spawn position")
	}
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	g := New(3, nil)

	// Jam the spawn region: every mask lands somewhere in columns 3-6
	// of the top two rows.
	for x := 3; x <= 6; x++ {
		fillCell(&g.board, x, 0, 1)
		fillCell(&g.board, x, 1, 1)
	}
	g.spawnNext()

	if !g.gameOver {
		t.Fatal("blocked spawn must end the game")
	}
}

func TestCommandsIgnoredAfterGameOver(t *testing.T) {
	g := New(3, nil)
	g.gameOver = true
	before := g.cur
	boardBefore := g.board.Cells()

	g.MoveLeft()
	g.MoveRight()
	g.RotateCW()
	g.RotateCCW()
	g.SoftStep()
	g.HardDrop()
	g.Hold()
	g.Tick(5 * time.Second)

	if g.cur != before {
		t.Error("commands on a finished game must not move the piece")
	}
	if g.board.Cells() != boardBefore {
		t.Error("commands on a finished game must not touch the board")
	}

	g.TogglePause()
	if !g.paused {
		t.Error("pause is the one command a finished game still takes")
	}

	g.Reset(3)
	if g.gameOver {
		t.Error("Reset must revive a finished game")
	}
	if g.paused {
		t.Error("Reset must clear a pause flipped on the game over screen")
	}
}

func TestPauseGatesCommands(t *testing.T) {
	g := New(2, nil)
	g.TogglePause()
	if !g.paused {
		t.Fatal("TogglePause should pause a running game")
	}

	before := g.cur
	g.MoveLeft()
	g.SoftStep()
	g.RotateCW()
	g.Hold()
	g.Tick(5 * time.Second)
	if g.cur != before {
		t.Error("commands while paused must not move the piece")
	}
	if g.fallAccumMs != 0 {
		t.Errorf("paused tick accumulated %dms", g.fallAccumMs)
	}

	g.TogglePause()
	g.MoveLeft()
	if g.cur.X != before.X-1 {
		t.Error("commands must work again after unpausing")
	}
}

func TestTickAccumulatesWholeIntervals(t *testing.T) {
	g := New(11, nil)

	// 1850ms at the starting 900ms interval is two steps with 50ms
	// left over.
	g.Tick(1850 * time.Millisecond)
	if g.cur.Y != 2 {
		t.Errorf("piece at y=%d after 1850ms, expected 2", g.cur.Y)
	}
	if g.fallAccumMs != 50 {
		t.Errorf("accumulator = %dms, expected 50", g.fallAccumMs)
	}

	// Sub-interval ticks accumulate without stepping.
	g.Tick(800 * time.Millisecond)
	if g.cur.Y != 2 {
		t.Errorf("piece stepped early at y=%d", g.cur.Y)
	}
	g.Tick(100 * time.Millisecond)
	if g.cur.Y != 3 {
		t.Errorf("piece at y=%d after the interval filled, expected 3", g.cur.Y)
	}

	// Sub-millisecond remainders are dropped, matching the integer
	// accumulator.
	acc := g.fallAccumMs
	g.Tick(500 * time.Microsecond)
	if g.fallAccumMs != acc {
		t.Errorf("sub-millisecond tick changed the accumulator to %d", g.fallAccumMs)
	}
}

func TestBurstPerClearedRow(t *testing.T) {
	rec := &burstRecorder{}
	g := New(1, rec)

	fillRow(&g.board, 18)
	fillRow(&g.board, 19)
	g.applyClears()

	if len(rec.calls) != 2 {
		t.Fatalf("got %d bursts, expected 2", len(rec.calls))
	}
	wantX := float64(TilePx*Cols) / 2
	wantY := float64(TilePx) * 19.5
	for i, call := range rec.calls {
		// Consecutive rows are detected at the same bottom index.
		if call.x != wantX || call.y != wantY {
			t.Errorf("burst %d at (%v, %v), expected (%v, %v)", i, call.x, call.y, wantX, wantY)
		}
		if call.base != burstColor {
			t.Errorf("burst %d color = %v, expected %v", i, call.base, burstColor)
		}
	}
}

func TestNilBurstSpawnerIsSafe(t *testing.T) {
	g := New(1, nil)
	fillRow(&g.board, 19)
	g.applyClears()
	if g.lines != 1 {
		t.Errorf("lines = %d, expected 1", g.lines)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(12345, nil)
		for i := 0; i < 40 && !g.gameOver; i++ {
			switch i % 5 {
			case 0:
				g.MoveLeft()
			case 1:
				g.RotateCW()
			case 2:
				g.MoveRight()
			case 3:
				g.Hold()
			}
			g.Tick(time.Duration(i%3+1) * 400 * time.Millisecond)
			if i%7 == 0 {
				g.HardDrop()
			}
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()
	if s1 != s2 {
		t.Errorf("two runs with the same seed diverged:\nrun1: %+v\nrun2: %+v", s1, s2)
	}
}

func TestResetClearsEverything(t *testing.T) {
	g := New(8, nil)
	for range 10 {
		g.HardDrop()
	}
	g.Hold()
	g.TogglePause()

	g.Reset(8)
	if g.score != 0 || g.lines != 0 || g.level != 0 {
		t.Error("Reset must zero score, lines and level")
	}
	if countFilled(&g.board) != 0 {
		t.Error("Reset must empty the board")
	}
	if g.fallMs != startSpeedMs || g.fallAccumMs != 0 {
		t.Error("Reset must restore the starting gravity interval")
	}
	if g.paused || g.gameOver {
		t.Error("Reset must clear pause and game over")
	}
	if g.hasHeld || !g.canHold {
		t.Error("Reset must empty the hold slot and re-arm it")
	}
}
