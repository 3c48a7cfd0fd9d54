package colorxfer

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Swatch is one dominant color of an image.
type Swatch struct {
	Color      [4]uint8
	Population int
}

// Hex formats the color channels as #rrggbb.
func (s Swatch) Hex() string {
	return colorful.Color{
		R: float64(s.Color[0]) / 255,
		G: float64(s.Color[1]) / 255,
		B: float64(s.Color[2]) / 255,
	}.Hex()
}

// NRGBA returns the swatch as a standard library color.
func (s Swatch) NRGBA() color.NRGBA {
	return color.NRGBA{R: s.Color[0], G: s.Color[1], B: s.Color[2], A: s.Color[3]}
}
