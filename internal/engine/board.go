package engine

// Cell is one board square. Flavor and Tint stick with the cell after
// the piece that placed it is gone, so cleared-and-shifted rows keep
// their look.
type Cell struct {
	Filled bool
	Flavor Flavor
	Tint   int
}

// Board is the playfield grid. Row 0 is the top; pieces fall toward
// Rows-1.
type Board struct {
	cells [Rows][Cols]Cell
}

// Collides reports whether the piece, placed with its mask origin at
// (x, y), would leave the field or overlap a filled cell. Mask cells
// above the top row count as collisions too.
func (b *Board) Collides(p Piece, x, y int) bool {
	for r := range 4 {
		for c := range 4 {
			if !p.Mask[r][c] {
				continue
			}
			cx := x + c
			cy := y + r
			if cx < 0 || cx >= Cols || cy < 0 || cy >= Rows {
				return true
			}
			if b.cells[cy][cx].Filled {
				return true
			}
		}
	}
	return false
}

// Lock stamps the piece onto the board at its current position. Mask
// cells outside the field are skipped silently.
func (b *Board) Lock(p Piece) {
	for r := range 4 {
		for c := range 4 {
			if !p.Mask[r][c] {
				continue
			}
			cx := p.X + c
			cy := p.Y + r
			if cy < 0 || cy >= Rows || cx < 0 || cx >= Cols {
				continue
			}
			b.cells[cy][cx] = Cell{Filled: true, Flavor: p.Flavor, Tint: p.Tint}
		}
	}
}

// ClearFullRows removes every full row and pulls the rows above down.
// It returns the clear count plus the row index at which each clear
// was detected, in detection order. After a pull the same index is
// re-examined, so a stack of full rows reports one index repeated.
func (b *Board) ClearFullRows() (int, []int) {
	cleared := 0
	var rows []int
	for r := Rows - 1; r >= 0; r-- {
		if !b.rowFull(r) {
			continue
		}
		rows = append(rows, r)
		cleared++

		// Pull everything above down one row
		for rr := r; rr > 0; rr-- {
			b.cells[rr] = b.cells[rr-1]
		}
		b.cells[0] = [Cols]Cell{}

		r++ // recheck the row that just dropped in
	}
	return cleared, rows
}

// rowFull reports whether every cell in row r is filled.
func (b *Board) rowFull(r int) bool {
	for c := range Cols {
		if !b.cells[r][c].Filled {
			return false
		}
	}
	return true
}

// At returns the cell at (x, y). Out-of-range coordinates return an
// empty cell.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return Cell{}
	}
	return b.cells[y][x]
}

// Cells returns a copy of the whole grid.
func (b *Board) Cells() [Rows][Cols]Cell {
	return b.cells
}

// Reset empties the board.
func (b *Board) Reset() {
	b.cells = [Rows][Cols]Cell{}
}
