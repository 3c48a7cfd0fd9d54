package colorspace

import "github.com/chewxy/math32"

// Reference white used by the Lab transform.
const (
	WhiteX float32 = 95.0489
	WhiteY float32 = 100
	WhiteZ float32 = 108.8840
)

const (
	labDelta  float32 = 6.0 / 29.0
	labDelta2         = labDelta * labDelta
	labDelta3         = labDelta2 * labDelta
)

// labF is the CIELAB companding function: a cube root above (6/29)^3 and
// a line tangent-matched to it below.
func labF(t float32) float32 {
	if t > labDelta3 {
		return math32.Pow(t, 1.0/3.0)
	}
	return t/(3*labDelta2) + 4.0/29.0
}

// labFInv inverts labF; its breakpoint sits at 6/29 in the f domain.
func labFInv(t float32) float32 {
	if t > labDelta {
		return math32.Pow(t, 3)
	}
	return 3 * labDelta2 * (t - 4.0/29.0)
}

// XYZToLab converts CIEXYZ to CIE L*a*b* relative to (WhiteX, WhiteY, WhiteZ).
//
// See https://en.wikipedia.org/wiki/CIELAB_color_space#From_CIEXYZ_to_CIELAB
func XYZToLab(xyz [3]float32) [3]float32 {
	fx := labF(xyz[0] / WhiteX)
	fy := labF(xyz[1] / WhiteY)
	fz := labF(xyz[2] / WhiteZ)

	return [3]float32{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(lab [3]float32) [3]float32 {
	l := (lab[0] + 16) / 116

	return [3]float32{
		WhiteX * labFInv(l+lab[1]/500),
		WhiteY * labFInv(l),
		WhiteZ * labFInv(l-lab[2]/200),
	}
}

// XYZAToLabA is XYZToLab with alpha passed through.
func XYZAToLabA(xyza [4]float32) [4]float32 {
	lab := XYZToLab([3]float32{xyza[0], xyza[1], xyza[2]})
	return [4]float32{lab[0], lab[1], lab[2], xyza[3]}
}

// LabAToXYZA is LabToXYZ with alpha passed through.
func LabAToXYZA(laba [4]float32) [4]float32 {
	xyz := LabToXYZ([3]float32{laba[0], laba[1], laba[2]})
	return [4]float32{xyz[0], xyz[1], xyz[2], laba[3]}
}

// RGBAToLabA converts normalized RGBA to Lab through XYZ.
func RGBAToLabA(rgba [4]float32) [4]float32 {
	return XYZAToLabA(RGBAToXYZA(rgba))
}

// LabAToRGBA converts Lab back to normalized RGBA through XYZ.
func LabAToRGBA(laba [4]float32) [4]float32 {
	return XYZAToRGBA(LabAToXYZA(laba))
}
