// Package colorxfer extracts dominant color clusters from images and
// transfers the color statistics of one image onto another.
//
// Pixels travel as Buffers of non-premultiplied RGBA bytes. A Transferer
// decodes them into float vectors in a chosen color space, clusters them
// with the cluster package and re-encodes the remapped result.
package colorxfer

import (
	"fmt"
	"image"

	"github.com/wbrown/colorxfer/cluster"
)

// Buffer is a rectangular block of interleaved RGBA bytes in row-major
// order, four bytes per pixel, no padding. Alpha is not premultiplied.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(width, height int) Buffer {
	return Buffer{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}

// Validate checks that Pix holds exactly Width*Height pixels.
func (b Buffer) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", cluster.ErrShapeMismatch, b.Width, b.Height)
	}
	if want := b.Width * b.Height * 4; len(b.Pix) != want {
		return fmt.Errorf("%w: %dx%d buffer needs %d bytes, got %d",
			cluster.ErrShapeMismatch, b.Width, b.Height, want, len(b.Pix))
	}
	return nil
}

// Len returns the number of pixels.
func (b Buffer) Len() int {
	return len(b.Pix) / 4
}

// Pixel returns pixel i in row-major order.
func (b Buffer) Pixel(i int) [4]uint8 {
	return [4]uint8(b.Pix[i*4 : i*4+4])
}

// SetPixel stores pixel i in row-major order.
func (b Buffer) SetPixel(i int, p [4]uint8) {
	copy(b.Pix[i*4:i*4+4], p[:])
}

// BufferFromImage copies an NRGBA image into a tightly packed buffer.
func BufferFromImage(img *image.NRGBA) Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(buf.Pix[y*w*4:], row)
	}
	return buf
}

// Image wraps a copy of the buffer as an NRGBA image.
func (b Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

// PixelSource yields a pixel buffer, typically decoded from an image.
type PixelSource interface {
	Pixels() (Buffer, error)
}

// PixelSink accepts a finished buffer for display or storage.
type PixelSink interface {
	Put(Buffer) error
}
