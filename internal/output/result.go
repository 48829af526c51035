// Package output renders detection results for people and for scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/phyten/termtheme/internal/colorutil"
	"github.com/phyten/termtheme/internal/theme"
)

// Painter decorates the rendered background of a sample. A nil Painter
// leaves it plain.
type Painter func(bg colorutil.RGB, text string) string

func (p Painter) paint(sample *colorutil.RGB, text string) string {
	if p == nil || sample == nil {
		return text
	}
	return p(*sample, text)
}

// Record is the JSON form of a detection result.
type Record struct {
	Theme  string `json:"theme"`
	Source string `json:"source"`
	BG     string `json:"bg"`
}

func FromResult(res theme.Result) Record {
	return Record{
		Theme:  res.Mode.String(),
		Source: string(res.Source),
		BG:     res.Background(),
	}
}

// WriteText prints the single summary line
// "theme=<mode> source=<source> bg=<#rrggbb|n/a>".
func WriteText(w io.Writer, res theme.Result, paint Painter) error {
	bg := paint.paint(res.Sample, res.Background())
	_, err := fmt.Fprintf(w, "theme=%s source=%s bg=%s\n", res.Mode, res.Source, bg)
	return err
}

// WriteJSON prints the result as one JSON object followed by a newline.
func WriteJSON(w io.Writer, res theme.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(FromResult(res))
}
