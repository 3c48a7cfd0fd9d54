// Package colorspace converts single pixels between byte and float
// encodings and between the RGB, HSV, CIEXYZ and CIELAB color spaces.
//
// Every function is pure and total: out-of-gamut or out-of-range inputs
// produce mathematically defined values instead of errors.
package colorspace

// ThresholdAlpha replaces a pixel whose alpha channel is below t with
// fully transparent black. Pixels at or above the threshold pass through
// unchanged, so near-transparent pixels are treated as absent instead of
// contributing their color.
func ThresholdAlpha(rgba [4]uint8, t uint8) [4]uint8 {
	if rgba[3] < t {
		return [4]uint8{}
	}
	return rgba
}

// BytesToFloats rescales each channel from [0,255] to [0,1].
func BytesToFloats(rgba [4]uint8) [4]float32 {
	return [4]float32{
		float32(rgba[0]) / 255,
		float32(rgba[1]) / 255,
		float32(rgba[2]) / 255,
		float32(rgba[3]) / 255,
	}
}

// FloatsToBytes rescales each channel from [0,1] to [0,255]. The result
// is truncated, not rounded, so a byte→float→byte round trip may lose one
// step. Values outside the byte range saturate and NaN becomes 0.
func FloatsToBytes(rgba [4]float32) [4]uint8 {
	return [4]uint8{
		floatToByte(rgba[0]),
		floatToByte(rgba[1]),
		floatToByte(rgba[2]),
		floatToByte(rgba[3]),
	}
}

func floatToByte(v float32) uint8 {
	v *= 255
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
