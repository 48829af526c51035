package colorutil

// ANSI16 holds xterm's default RGB values for the sixteen basic palette slots:
// black, red, green, yellow, blue, magenta, cyan, light gray, then dark gray
// and the bright variants.
var ANSI16 = [16]RGB{
	{0, 0, 0},
	{205, 0, 0},
	{0, 205, 0},
	{205, 205, 0},
	{0, 0, 238},
	{205, 0, 205},
	{0, 205, 205},
	{229, 229, 229},
	{127, 127, 127},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{92, 92, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
}

// PaletteColor returns the default color for a basic palette index.
func PaletteColor(idx int) (RGB, bool) {
	if idx < 0 || idx >= len(ANSI16) {
		return RGB{}, false
	}
	return ANSI16[idx], true
}
