package cell

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Tint is the display colour of a cell. It carries no game meaning.
type Tint int

const (
	None Tint = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
	Grid
)

var palette = map[Tint]color.RGBA{
	None:   colornames.White,
	Cyan:   colornames.Cyan,
	Blue:   colornames.Royalblue,
	Orange: colornames.Orange,
	Yellow: colornames.Gold,
	Green:  colornames.Limegreen,
	Purple: colornames.Mediumorchid,
	Red:    colornames.Crimson,
	Grid:   {R: 50, G: 50, B: 50, A: 255},
}

// NRGBA returns the colour for the tint. Unknown tints render white.
func (t Tint) NRGBA() color.NRGBA {
	c, ok := palette[t]
	if !ok {
		c = palette[None]
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
