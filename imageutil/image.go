// Package imageutil provides the pure Go image layer around the color
// transfer core: decoding onto a non-premultiplied canvas, resizing,
// saving, and drawing swatch sheets.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// NRGBAImage wraps image.NRGBA with convenience methods for pixel access.
// Channels are stored without alpha premultiplication, which is the
// layout the clustering code expects.
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage creates a new, fully transparent NRGBAImage with the
// specified dimensions.
func NewNRGBAImage(width, height int) *NRGBAImage {
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NRGBAImageFromImage composites any image.Image onto a cleared canvas
// anchored at the origin.
func NRGBAImageFromImage(img image.Image) *NRGBAImage {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return &NRGBAImage{NRGBA: nrgba}
	}
	bounds := img.Bounds()
	dst := NewNRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.NRGBA, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the image width.
func (img *NRGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *NRGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Fill paints the rectangle r with c.
func (img *NRGBAImage) Fill(r image.Rectangle, c color.Color) {
	draw.Draw(img.NRGBA, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// CountBelowAlpha returns how many pixels have alpha below threshold.
func (img *NRGBAImage) CountBelowAlpha(threshold uint8) int {
	n := 0
	w, h := img.Width(), img.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.NRGBAAt(x, y).A < threshold {
				n++
			}
		}
	}
	return n
}

// Clone creates a deep copy of the image.
func (img *NRGBAImage) Clone() *NRGBAImage {
	clone := NewNRGBAImage(img.Width(), img.Height())
	draw.Draw(clone.NRGBA, clone.Bounds(), img.NRGBA, img.Bounds().Min, draw.Src)
	return clone
}
