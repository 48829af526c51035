package colorutil

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Parse extracts a color from any of the encodings terminals and their
// configuration stores use: an xterm dynamic-color reply ("rgb:RRRR/GGGG/BBBB"),
// a CSS-style "rgb(r,g,b)" triple, or a "#RRGGBB" hex string.
func Parse(s string) (RGB, bool) {
	if c, ok := ParseDynamicColor(s); ok {
		return c, true
	}
	if c, ok := ParseCSS(s); ok {
		return c, true
	}
	return ParseHex(s)
}

// ParseHex accepts "#RRGGBB" or a bare six-digit hex string. Surrounding
// whitespace and quotes are ignored.
func ParseHex(s string) (RGB, bool) {
	v := strings.TrimPrefix(trimValue(s), "#")
	if len(v) != 6 || !isHex(v) {
		return RGB{}, false
	}
	c, err := colorful.Hex("#" + v)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// ParseDynamicColor parses the "rgb:" form of an OSC 10/11 reply. Components
// carry two to four hex digits; only the two most significant digits are kept,
// so "rgb:1e1e/2020/ffff" becomes {0x1e, 0x20, 0xff}. Anything after a BEL or
// ESC byte is ignored.
func ParseDynamicColor(s string) (RGB, bool) {
	idx := strings.Index(s, "rgb:")
	if idx < 0 {
		return RGB{}, false
	}
	rest := s[idx+len("rgb:"):]
	if end := strings.IndexAny(rest, "\x07\x1b"); end >= 0 {
		rest = rest[:end]
	}
	rest = strings.TrimRight(rest, " \t\r\n'\"")
	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return RGB{}, false
	}
	var ch [3]uint8
	for i, p := range parts {
		if len(p) < 2 || len(p) > 4 || !isHex(p) {
			return RGB{}, false
		}
		n, err := strconv.ParseUint(p[:2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// ParseCSS parses "rgb(r, g, b)" with decimal channels, the form GNOME stores
// profile colors in.
func ParseCSS(s string) (RGB, bool) {
	v := strings.ToLower(trimValue(s))
	if !strings.HasPrefix(v, "rgb(") || !strings.HasSuffix(v, ")") {
		return RGB{}, false
	}
	fields := strings.Split(v[len("rgb("):len(v)-1], ",")
	if len(fields) != 3 {
		return RGB{}, false
	}
	var ch [3]uint8
	for i, f := range fields {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// Hex renders c as "#rrggbb".
func Hex(c RGB) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

func trimValue(s string) string {
	v := strings.TrimSpace(s)
	v = strings.Trim(v, "'\"")
	return strings.TrimSpace(v)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
