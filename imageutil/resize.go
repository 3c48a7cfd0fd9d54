package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an NRGBA image to the specified dimensions using the
// given interpolation method. Alpha is carried through unblended.
func Resize(img *NRGBAImage, width, height int, interp Interpolation) *NRGBAImage {
	dst := NewNRGBAImage(width, height)
	interp.scaler().Scale(dst.NRGBA, dst.Bounds(), img.NRGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// FitWithin scales img down so that its longest side is at most maxDim,
// keeping the aspect ratio. Images that already fit are returned as is.
func FitWithin(img *NRGBAImage, maxDim int, interp Interpolation) *NRGBAImage {
	size := FitSize(img.Bounds().Size(), maxDim)
	if size == img.Bounds().Size() {
		return img
	}
	return Resize(img, size.X, size.Y, interp)
}

// FitSize returns the size FitWithin scales to. Sizes already within
// maxDim, and a non-positive maxDim, are returned unchanged.
func FitSize(size image.Point, maxDim int) image.Point {
	if maxDim <= 0 || (size.X <= maxDim && size.Y <= maxDim) {
		return size
	}
	if size.X >= size.Y {
		return image.Pt(maxDim, max(1, size.Y*maxDim/size.X))
	}
	return image.Pt(max(1, size.X*maxDim/size.Y), maxDim)
}
