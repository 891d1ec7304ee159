package core

import "fmt"

// Color is a 24-bit foreground color for a screen cell. The zero value
// means "unset": renderers leave such cells unstyled so the terminal's
// own foreground shows through.
type Color struct {
	R, G, B uint8
	set     bool
}

// NewColor returns an explicitly assigned RGB color.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsSet reports whether the color was explicitly assigned.
func (c Color) IsSet() bool {
	return c.set
}

// Hex renders the color as a #rrggbb string, the form terminal style
// libraries take for true-color foregrounds.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
