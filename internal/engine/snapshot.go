package engine

// Snapshot is a read-only copy of everything the presentation layer
// needs for one frame. It shares no memory with the game, so callers
// may keep it across frames or hand it to another goroutine.
type Snapshot struct {
	Board [Rows][Cols]Cell

	Current Piece
	Next    Piece
	Held    Piece
	HasHeld bool
	CanHold bool

	Score int
	Lines int
	Level int

	GameOver bool
	Paused   bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:    g.board.Cells(),
		Current:  g.cur,
		Next:     g.next,
		Held:     g.held,
		HasHeld:  g.hasHeld,
		CanHold:  g.canHold,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
