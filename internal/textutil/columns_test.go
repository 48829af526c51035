package textutil

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestVisibleWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	cases := []struct {
		name string
		s    string
		want int
	}{
		{name: "ASCII", s: "#1e1e2e", want: 7},
		{name: "Wide", s: "あい", want: 4},
		{name: "CombiningMark", s: "é", want: 1},
		{name: "TrueColorSwatch", s: "\x1b[38;2;0;0;0;48;2;255;255;255m#ffffff\x1b[0m", want: 7},
		{name: "Empty", s: "", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VisibleWidth(tc.s); got != tc.want {
				t.Fatalf("VisibleWidth(%q) = %d, want %d", tc.s, got, tc.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "\x1b[1mbold\x1b[0m", want: "bold"},
		{in: "\x1b]11;?\x1b\\", want: ""},
		{in: "\x1b]8;;https://example.com\x07link\x1b]8;;\x07", want: "link"},
	}
	for _, tc := range cases {
		if got := StripANSI(tc.in); got != tc.want {
			t.Fatalf("StripANSI(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	setEastAsianWidth(t, false)
	if got := PadRight("あ", 5); got != "あ   " {
		t.Fatalf("PadRight wide = %q", got)
	}
	if got := PadRight("toolong", 3); got != "toolong" {
		t.Fatalf("PadRight should not truncate, got %q", got)
	}
}

func TestColumns(t *testing.T) {
	painted := "\x1b[1m#ffffff\x1b[0m"
	got := Columns([][]string{
		{"SOURCE", "BG", "THEME"},
		{"osc-11", painted, "light"},
		{"xdg-portal-color-scheme", "-", "dark"},
	}, 2)
	want := []string{
		"SOURCE                   BG       THEME",
		"osc-11                   " + painted + "  light",
		"xdg-portal-color-scheme  -        dark",
	}
	if len(got) != len(want) {
		t.Fatalf("Columns returned %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestColumns_RaggedRows(t *testing.T) {
	got := Columns([][]string{{"a", "b"}, {"ccc"}}, 0)
	if got[0] != "a   b" {
		t.Fatalf("unexpected first line %q", got[0])
	}
	if got[1] != "ccc" {
		t.Fatalf("last cell must stay unpadded, got %q", got[1])
	}
}

func setEastAsianWidth(t *testing.T, eastAsian bool) {
	t.Helper()
	prev := runewidth.EastAsianWidth
	runewidth.EastAsianWidth = eastAsian
	runewidth.DefaultCondition = runewidth.NewCondition()
	t.Cleanup(func() {
		runewidth.EastAsianWidth = prev
		runewidth.DefaultCondition = runewidth.NewCondition()
	})
}
