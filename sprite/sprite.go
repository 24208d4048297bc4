package sprite

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Size is the edge length of the cell sprites in pixels.
const Size = 32

// bevel is the width of the shaded edge on a cell sprite.
const bevel = 4

// Cell and Ghost are drawn white so they can be tinted per piece type.
var Cell, Ghost *ebiten.Image

var spriteMap = map[string]struct {
	img  **ebiten.Image
	draw func(*ebiten.Image)
}{
	"cell":  {img: &Cell, draw: drawCell},
	"ghost": {img: &Ghost, draw: drawGhost},
}

func drawCell(img *ebiten.Image) {
	img.Fill(color.White)
	shade := color.Gray{Y: 150}
	light := color.Gray{Y: 235}
	vector.DrawFilledRect(img, 0, 0, Size, bevel, light, false)
	vector.DrawFilledRect(img, 0, 0, bevel, Size, light, false)
	vector.DrawFilledRect(img, 0, Size-bevel, Size, bevel, shade, false)
	vector.DrawFilledRect(img, Size-bevel, 0, bevel, Size, shade, false)
}

func drawGhost(img *ebiten.Image) {
	vector.StrokeRect(img, 1, 1, Size-2, Size-2, 2, color.White, false)
	vector.DrawFilledRect(img, bevel, bevel, Size-2*bevel, Size-2*bevel, color.Gray{Y: 60}, false)
}

// Load builds the cell sprites and parses the fonts. It must run before the first frame is drawn.
func Load() error {
	for _, s := range spriteMap {
		img := ebiten.NewImage(Size, Size)
		s.draw(img)
		*s.img = img
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}
