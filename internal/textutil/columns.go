// Package textutil measures and aligns text the way a terminal displays it.
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI and OSC sequences, including the SGR codes used for swatches.
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal cells s occupies, ignoring
// escape sequences and counting each grapheme cluster once.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	g := uniseg.NewGraphemes(StripANSI(s))
	width := 0
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// PadRight pads s with spaces up to visible width w.
func PadRight(s string, w int) string {
	pad := w - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// Columns aligns rows into columns separated by gap spaces. The last cell of
// each row is left unpadded so lines carry no trailing blanks.
func Columns(rows [][]string, gap int) []string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if w := VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	sep := strings.Repeat(" ", max(gap, 1))
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i > 0 {
				b.WriteString(sep)
			}
			if i == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(PadRight(cell, widths[i]))
		}
		lines = append(lines, b.String())
	}
	return lines
}
