package sprite

import (
	"fmt"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	Regular   *opentype.Font
	Monospace *opentype.Font
)

var fontMap = map[string]struct {
	font **opentype.Font
	ttf  []byte
}{
	"regular":   {font: &Regular, ttf: goregular.TTF},
	"monospace": {font: &Monospace, ttf: gomono.TTF},
}

func loadFonts() error {
	for name, f := range fontMap {
		parsed, err := opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		*f.font = parsed
	}
	return nil
}
