package engine

// Board dimensions in cells, and the size of one cell in effect-space
// pixels. Particle bursts are positioned in effect space so the fade
// physics stays independent of terminal geometry.
const (
	Cols   = 10
	Rows   = 20
	TilePx = 32
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	// KindCount is the number of tetromino kinds.
	KindCount = 7
)

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Flavor selects the tile artwork variant. Both flavors behave
// identically; the split is purely visual.
type Flavor uint8

const (
	FlavorIce Flavor = iota
	FlavorBurger

	// FlavorCount is the number of tile flavors.
	FlavorCount = 2
)

// Mask is a 4x4 occupancy grid. Masks rotate in place, so an occupied
// cell can end up anywhere in the grid after a few turns.
type Mask [4][4]bool

// shapeLayouts defines the spawn orientation of each kind, one string
// per mask row with '#' marking an occupied cell.
var shapeLayouts = [KindCount][4]string{
	KindI: {
		"....",
		"####",
		"....",
		"....",
	},
	KindO: {
		"##..",
		"##..",
		"....",
		"....",
	},
	KindT: {
		".#..",
		"###.",
		"....",
		"....",
	},
	KindS: {
		".##.",
		"##..",
		"....",
		"....",
	},
	KindZ: {
		"##..",
		".##.",
		"....",
		"....",
	},
	KindJ: {
		"#...",
		"###.",
		"....",
		"....",
	},
	KindL: {
		"..#.",
		"###.",
		"....",
		"....",
	},
}

// shapes holds the parsed canonical masks, indexed by Kind.
var shapes [KindCount]Mask

func init() {
	for k, layout := range shapeLayouts {
		for r, row := range layout {
			for c, ch := range row {
				shapes[k][r][c] = ch == '#'
			}
		}
	}
}

// MaskFor returns a copy of the canonical spawn mask for the kind.
func MaskFor(k Kind) Mask {
	return shapes[k]
}
