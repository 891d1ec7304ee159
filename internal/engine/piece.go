package engine

import "math/rand"

// Piece is a tetromino in flight: a mask plus its top-left position on
// the board. It is a value type so candidate moves and rotations can
// work on a copy and commit only when they fit.
type Piece struct {
	Kind   Kind
	Mask   Mask
	X, Y   int
	Flavor Flavor
	Tint   int // palette index, kept on locked cells
}

// NewPiece returns a piece of the given kind at the spawn position,
// with a randomly chosen flavor.
func NewPiece(k Kind, rng *rand.Rand) Piece {
	return Piece{
		Kind:   k,
		Mask:   MaskFor(k),
		X:      Cols/2 - 2,
		Y:      0,
		Flavor: Flavor(rng.Intn(FlavorCount)),
		Tint:   int(k),
	}
}

// randomPiece draws a kind uniformly. Spawns are independent draws,
// not a shuffled bag, so droughts and repeats happen.
func randomPiece(rng *rand.Rand) Piece {
	return NewPiece(Kind(rng.Intn(KindCount)), rng)
}

// RotateCW turns the mask a quarter turn clockwise in place. The
// result may overlap walls or stack; callers check with Board.Collides.
func (p *Piece) RotateCW() {
	var t Mask
	for r := range 4 {
		for c := range 4 {
			t[c][3-r] = p.Mask[r][c]
		}
	}
	p.Mask = t
}

// RotateCCW turns the mask a quarter turn counter-clockwise in place.
func (p *Piece) RotateCCW() {
	var t Mask
	for r := range 4 {
		for c := range 4 {
			t[3-c][r] = p.Mask[r][c]
		}
	}
	p.Mask = t
}
