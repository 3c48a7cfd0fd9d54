package colorspace

import "github.com/chewxy/math32"

// RGBToHSV converts normalized RGB to HSV with hue in degrees [0,360)
// and saturation and value in [0,1].
//
// When several channels tie for the maximum the red branch wins, then
// green, then blue. Achromatic input (zero chroma) maps to hue 0 and
// saturation 0.
func RGBToHSV(rgb [3]float32) [3]float32 {
	r, g, b := rgb[0], rgb[1], rgb[2]

	value := math32.Max(math32.Max(r, g), b)
	lowest := math32.Min(math32.Min(r, g), b)
	chroma := value - lowest

	var hue float32
	switch {
	case chroma == 0:
		hue = 0
	case value == r:
		hue = 60 * (0 + (g-b)/chroma)
	case value == g:
		hue = 60 * (2 + (b-r)/chroma)
	default:
		hue = 60 * (4 + (r-g)/chroma)
	}
	hue = remEuclid(hue, 360)

	var saturation float32
	if value != 0 {
		saturation = chroma / value
	}

	return [3]float32{hue, saturation, value}
}

// HSVToRGB converts HSV back to normalized RGB. A NaN hue yields black.
// A hue outside [0,360) falls into no sector and yields the gray (v-c)
// in every channel.
func HSVToRGB(hsv [3]float32) [3]float32 {
	h, s, v := hsv[0], hsv[1], hsv[2]

	// NaN compares false against every sector bound below.
	if math32.IsNaN(h) {
		return [3]float32{}
	}

	c := v * s
	sector := h / 60
	x := c * (1 - math32.Abs(remEuclid(sector, 2)-1))
	m := v - c

	var r1, g1, b1 float32
	switch {
	case sector >= 0 && sector < 1:
		r1, g1, b1 = c, x, 0
	case sector >= 1 && sector < 2:
		r1, g1, b1 = x, c, 0
	case sector >= 2 && sector < 3:
		r1, g1, b1 = 0, c, x
	case sector >= 3 && sector < 4:
		r1, g1, b1 = 0, x, c
	case sector >= 4 && sector < 5:
		r1, g1, b1 = x, 0, c
	case sector >= 5 && sector < 6:
		r1, g1, b1 = c, 0, x
	}

	return [3]float32{r1 + m, g1 + m, b1 + m}
}

// RGBAToHSVA is RGBToHSV with alpha passed through.
func RGBAToHSVA(rgba [4]float32) [4]float32 {
	hsv := RGBToHSV([3]float32{rgba[0], rgba[1], rgba[2]})
	return [4]float32{hsv[0], hsv[1], hsv[2], rgba[3]}
}

// HSVAToRGBA is HSVToRGB with alpha passed through.
func HSVAToRGBA(hsva [4]float32) [4]float32 {
	rgb := HSVToRGB([3]float32{hsva[0], hsva[1], hsva[2]})
	return [4]float32{rgb[0], rgb[1], rgb[2], hsva[3]}
}

// remEuclid returns the non-negative remainder of a divided by b (b > 0).
func remEuclid(a, b float32) float32 {
	r := math32.Mod(a, b)
	if r < 0 {
		r += b
	}
	// a tiny negative remainder can round up to b itself
	if r >= b {
		r = 0
	}
	return r
}
