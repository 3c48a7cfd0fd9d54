package colorspace

import (
	"fmt"
	"strings"
)

// Space selects the intermediate representation used while clustering
// and transferring colors. All spaces carry alpha in the fourth channel.
type Space int

const (
	// RGB keeps normalized RGB channels.
	RGB Space = iota
	// HSV uses hue in degrees, saturation and value.
	HSV
	// XYZ uses the linear sRGB/D65 CIEXYZ transform.
	XYZ
	// Lab uses CIE L*a*b* computed from XYZ.
	Lab
)

var spaceNames = map[Space]string{
	RGB: "rgb",
	HSV: "hsv",
	XYZ: "xyz",
	Lab: "lab",
}

// String returns the lower-case name of the space.
func (s Space) String() string {
	if name, ok := spaceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// ParseSpace converts a space name (case-insensitive) to a Space.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rgb":
		return RGB, nil
	case "hsv":
		return HSV, nil
	case "xyz":
		return XYZ, nil
	case "lab", "cielab":
		return Lab, nil
	default:
		return 0, fmt.Errorf("unknown color space: %q", name)
	}
}

// FromRGBA converts normalized RGBA into the space.
func (s Space) FromRGBA(rgba [4]float32) [4]float32 {
	switch s {
	case HSV:
		return RGBAToHSVA(rgba)
	case XYZ:
		return RGBAToXYZA(rgba)
	case Lab:
		return RGBAToLabA(rgba)
	default:
		return rgba
	}
}

// ToRGBA converts a vector in the space back to normalized RGBA.
func (s Space) ToRGBA(v [4]float32) [4]float32 {
	switch s {
	case HSV:
		return HSVAToRGBA(v)
	case XYZ:
		return XYZAToRGBA(v)
	case Lab:
		return LabAToRGBA(v)
	default:
		return v
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Space) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Space can be
// read directly from a config file.
func (s *Space) UnmarshalText(text []byte) error {
	parsed, err := ParseSpace(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
