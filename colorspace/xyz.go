package colorspace

// sRGB (D65) primaries to CIEXYZ, from
// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
var rgbToXYZ = [9]float32{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
}

// Inverse of rgbToXYZ.
var xyzToRGB = [9]float32{
	3.2404542, -1.5371385, -0.4985314,
	-0.9692660, 1.8760108, 0.0415560,
	0.0556434, -0.2040259, 1.0572252,
}

// RGBToXYZ applies the linear sRGB→XYZ matrix to normalized RGB. No
// gamma decoding is performed; the result is in the same [0,1] scale.
func RGBToXYZ(rgb [3]float32) [3]float32 {
	return mul3(&rgbToXYZ, rgb)
}

// XYZToRGB is the inverse of RGBToXYZ.
func XYZToRGB(xyz [3]float32) [3]float32 {
	return mul3(&xyzToRGB, xyz)
}

// RGBAToXYZA is RGBToXYZ with alpha passed through.
func RGBAToXYZA(rgba [4]float32) [4]float32 {
	xyz := RGBToXYZ([3]float32{rgba[0], rgba[1], rgba[2]})
	return [4]float32{xyz[0], xyz[1], xyz[2], rgba[3]}
}

// XYZAToRGBA is XYZToRGB with alpha passed through.
func XYZAToRGBA(xyza [4]float32) [4]float32 {
	rgb := XYZToRGB([3]float32{xyza[0], xyza[1], xyza[2]})
	return [4]float32{rgb[0], rgb[1], rgb[2], xyza[3]}
}

func mul3(m *[9]float32, v [3]float32) [3]float32 {
	return [3]float32{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}
