package termcolor

import (
	"strconv"
	"strings"

	"github.com/phyten/termtheme/internal/colorutil"
)

// BackgroundIndex reads the background palette index from a COLORFGBG value
// such as "15;0" or "0;default;15". Only the last non-empty segment counts.
func BackgroundIndex(raw string) (int, bool) {
	var parts []string
	for _, p := range strings.Split(strings.TrimSpace(raw), ";") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return 0, false
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, false
	}
	return bg, true
}

// ColorFGBG maps a COLORFGBG value onto the default xterm color of its
// background slot. Indexes outside the basic sixteen are rejected.
func ColorFGBG(raw string) (colorutil.RGB, bool) {
	idx, ok := BackgroundIndex(raw)
	if !ok {
		return colorutil.RGB{}, false
	}
	return colorutil.PaletteColor(idx)
}
