package colorutil

import "math"

// RGB is an 8-bit per channel color sample.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// Luma709Scale is the factor between Luma709 and Luma709Scaled: 10000 for the
// four-digit coefficients times 255 for the channel range.
const Luma709Scale = 10000 * 255

// Luma709 returns the Rec. 709 weighted brightness of c in [0, 1], computed on
// the encoded channel values without linearisation.
func Luma709(c RGB) float64 {
	return float64(0.2126*(float64(c.R)/255.0)) +
		float64(0.7152*(float64(c.G)/255.0)) +
		float64(0.0722*(float64(c.B)/255.0))
}

// Luma709Scaled is Luma709(c)*Luma709Scale computed exactly, for threshold
// comparisons that must not depend on float rounding.
func Luma709Scaled(c RGB) int {
	return 2126*int(c.R) + 7152*int(c.G) + 722*int(c.B)
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func luminance(rgb RGB) float64 {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func ContrastRatio(fg, bg RGB) float64 {
	l1 := luminance(fg)
	l2 := luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// AutoTextColor picks black or white, whichever reads better on bg.
func AutoTextColor(bg RGB) RGB {
	crBlack := ContrastRatio(black, bg)
	crWhite := ContrastRatio(white, bg)
	if crBlack >= 4.5 || crBlack >= crWhite {
		return black
	}
	return white
}
