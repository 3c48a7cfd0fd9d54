package colorxfer

import (
	"fmt"

	"github.com/wbrown/colorxfer/imageutil"
)

// FileSource loads an image file as a pixel buffer. Images larger than
// MaxDimension on their longest side are scaled down first; zero keeps
// the original size.
type FileSource struct {
	Path         string
	MaxDimension int
}

// Pixels decodes the file.
func (s FileSource) Pixels() (Buffer, error) {
	img, err := imageutil.LoadImage(s.Path)
	if err != nil {
		return Buffer{}, err
	}
	if s.MaxDimension > 0 {
		img = imageutil.FitWithin(img, s.MaxDimension, imageutil.InterpolationArea)
	}
	return BufferFromImage(img.NRGBA), nil
}

// FileSink writes buffers to an image file whose format follows the
// extension of Path.
type FileSink struct {
	Path string
}

// Put encodes b to Path.
func (s FileSink) Put(b Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	return imageutil.SaveImage(b.Image(), s.Path)
}
