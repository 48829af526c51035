package termcolor

import (
	"fmt"
	"strings"

	"github.com/phyten/termtheme/internal/colorutil"
)

type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FGBasic   *int
	FG256     *int
	FGTrue    *[3]uint8
	BG256     *int
	BGTrue    *[3]uint8
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

// SwatchStyle paints text on bg with whichever of black or white reads better,
// degrading to the 256-color cube when truecolor is unavailable. Basic
// terminals get no background at all.
func SwatchStyle(bg colorutil.RGB, profile Profile) Style {
	fg := colorutil.AutoTextColor(bg)
	switch profile {
	case ProfileTrueColor:
		bgRGB := [3]uint8{bg.R, bg.G, bg.B}
		fgRGB := [3]uint8{fg.R, fg.G, fg.B}
		return Style{BGTrue: &bgRGB, FGTrue: &fgRGB}
	case ProfileANSI256:
		bgIdx := rgbToANSI256(bg.R, bg.G, bg.B)
		fgIdx := rgbToANSI256(fg.R, fg.G, fg.B)
		return Style{BG256: &bgIdx, FG256: &fgIdx}
	default:
		return Style{Bold: true}
	}
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 6)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.FGTrue != nil {
		rgb := *s.FGTrue
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", rgb[0], rgb[1], rgb[2]))
	} else if s.FG256 != nil {
		codes = append(codes, fmt.Sprintf("38;5;%d", *s.FG256))
	} else if s.FGBasic != nil {
		codes = append(codes, fmt.Sprintf("3%d", *s.FGBasic))
	}
	if s.BGTrue != nil {
		rgb := *s.BGTrue
		codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", rgb[0], rgb[1], rgb[2]))
	} else if s.BG256 != nil {
		codes = append(codes, fmt.Sprintf("48;5;%d", *s.BG256))
	}
	return codes
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
