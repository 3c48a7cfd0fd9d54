package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// SwatchSize is the edge length of one swatch tile in pixels.
	SwatchSize = 64

	labelHeight   = 16
	labelFontSize = 10
)

// SwatchStroke is the 1px outline drawn around every tile.
var SwatchStroke = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

var defaultFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// LoadFont loads a TrueType font from file for swatch labels.
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return ttf, nil
}

// RenderSwatches lays colors out left to right as outlined tiles. When
// labels is non-nil it must hold one entry per color; each label is drawn
// centered on a white strip below its tile. A nil ttf selects Go Regular.
func RenderSwatches(colors []color.NRGBA, labels []string, ttf *truetype.Font) (*NRGBAImage, error) {
	if len(colors) == 0 {
		return nil, errors.New("no swatch colors")
	}
	if labels != nil && len(labels) != len(colors) {
		return nil, fmt.Errorf("got %d labels for %d swatches", len(labels), len(colors))
	}

	height := SwatchSize
	if labels != nil {
		height += labelHeight
	}
	img := NewNRGBAImage(len(colors)*SwatchSize, height)

	for i, c := range colors {
		tile := image.Rect(i*SwatchSize, 0, (i+1)*SwatchSize, SwatchSize)
		img.Fill(tile, c)
		strokeRect(img, tile, SwatchStroke)
	}

	if labels == nil {
		return img, nil
	}
	img.Fill(image.Rect(0, SwatchSize, img.Width(), height), color.White)
	if ttf == nil {
		var err error
		if ttf, err = defaultFont(); err != nil {
			return nil, fmt.Errorf("loading label font: %w", err)
		}
	}
	if err := drawLabels(img, labels, ttf); err != nil {
		return nil, err
	}
	return img, nil
}

func strokeRect(img *NRGBAImage, r image.Rectangle, c color.NRGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetNRGBA(x, r.Min.Y, c)
		img.SetNRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetNRGBA(r.Min.X, y, c)
		img.SetNRGBA(r.Max.X-1, y, c)
	}
}

func drawLabels(img *NRGBAImage, labels []string, ttf *truetype.Font) error {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    labelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(labelFontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img.NRGBA)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	ascent := face.Metrics().Ascent.Ceil()
	baseline := SwatchSize + (labelHeight+ascent)/2 - 1
	for i, label := range labels {
		width := font.MeasureString(face, label).Ceil()
		x := i*SwatchSize + max(0, (SwatchSize-width)/2)
		if _, err := ctx.DrawString(label, freetype.Pt(x, baseline)); err != nil {
			return fmt.Errorf("drawing label %q: %w", label, err)
		}
	}
	return nil
}
