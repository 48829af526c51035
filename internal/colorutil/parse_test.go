package colorutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#101010", RGB{16, 16, 16}, true},
		{"002b36", RGB{0, 43, 54}, true},
		{"#FDF6E3", RGB{253, 246, 227}, true},
		{"  '#0C0C0C'  ", RGB{12, 12, 12}, true},
		{"#12345", RGB{}, false},
		{"#1234567", RGB{}, false},
		{"#zzzzzz", RGB{}, false},
		{"", RGB{}, false},
		{"#", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDynamicColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGB
		ok   bool
	}{
		{"four digits truncate", "rgb:1e1e/2020/ffff", RGB{0x1e, 0x20, 0xff}, true},
		{"no rescale", "rgb:12ff/34ff/56ff", RGB{0x12, 0x34, 0x56}, true},
		{"two digits", "rgb:aa/bb/cc", RGB{0xaa, 0xbb, 0xcc}, true},
		{"three digits", "rgb:abc/def/123", RGB{0xab, 0xde, 0x12}, true},
		{"full ST reply", "\x1b]11;rgb:0000/0000/0000\x1b\\", RGB{0, 0, 0}, true},
		{"full BEL reply", "\x1b]11;rgb:ffff/ffff/ffff\x07", RGB{255, 255, 255}, true},
		{"one digit", "rgb:a/bb/cc", RGB{}, false},
		{"five digits", "rgb:aaaaa/bb/cc", RGB{}, false},
		{"missing component", "rgb:aaaa/bbbb", RGB{}, false},
		{"extra component", "rgb:aa/bb/cc/dd", RGB{}, false},
		{"not hex", "rgb:gg/bb/cc", RGB{}, false},
		{"no prefix", "1e1e/2020/ffff", RGB{}, false},
		{"truncated reply", "\x1b]11;rgb:1e1e/20", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDynamicColor(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDynamicColorRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := RGB{R: uint8(v), G: uint8(255 - v), B: uint8((v * 7) % 256)}
		reply := fmt.Sprintf("rgb:%02x%02x/%02x%02x/%02x%02x", c.R, c.R, c.G, c.G, c.B, c.B)
		got, ok := ParseDynamicColor(reply)
		require.True(t, ok, reply)
		require.Equal(t, c, got, reply)
	}
}

func TestParseCSS(t *testing.T) {
	got, ok := ParseCSS("'rgb(0,43,54)'")
	require.True(t, ok)
	assert.Equal(t, RGB{0, 43, 54}, got)

	got, ok = ParseCSS("RGB( 255, 255 , 255 )")
	require.True(t, ok)
	assert.Equal(t, RGB{255, 255, 255}, got)

	for _, bad := range []string{"rgb(256,0,0)", "rgb(1,2)", "rgb(a,b,c)", "rgba(1,2,3,4)", "rgb(1,2,3"} {
		_, ok := ParseCSS(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseTriesEveryEncoding(t *testing.T) {
	tests := map[string]RGB{
		"rgb:1010/2020/3030": {0x10, 0x20, 0x30},
		"'rgb(16,32,48)'":    {16, 32, 48},
		"#102030":            {0x10, 0x20, 0x30},
		"102030":             {0x10, 0x20, 0x30},
	}
	for in, want := range tests {
		got, ok := Parse(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := Parse("'default'")
	assert.False(t, ok)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#101010", Hex(RGB{16, 16, 16}))
	assert.Equal(t, "#ffffff", Hex(RGB{255, 255, 255}))
	for v := 0; v < 256; v++ {
		c := RGB{uint8(v), uint8(255 - v), uint8(v / 2)}
		back, ok := ParseHex(Hex(c))
		require.True(t, ok)
		require.Equal(t, c, back)
	}
}

func TestPaletteColor(t *testing.T) {
	c, ok := PaletteColor(0)
	require.True(t, ok)
	assert.Equal(t, RGB{0, 0, 0}, c)

	c, ok = PaletteColor(15)
	require.True(t, ok)
	assert.Equal(t, RGB{255, 255, 255}, c)

	_, ok = PaletteColor(16)
	assert.False(t, ok)
	_, ok = PaletteColor(-1)
	assert.False(t, ok)
}
