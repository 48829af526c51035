package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/phyten/termtheme/internal/colorutil"
	"github.com/phyten/termtheme/internal/textutil"
	"github.com/phyten/termtheme/internal/theme"
)

const notAvailable = "n/a"

// StepRecord is the JSON form of one probe answer. Theme is empty when the
// probe had no answer.
type StepRecord struct {
	Source    string `json:"source"`
	Available bool   `json:"available"`
	Theme     string `json:"theme,omitempty"`
	BG        string `json:"bg"`
}

func FromStep(step theme.Step) StepRecord {
	rec := StepRecord{Source: string(step.Source), BG: notAvailable}
	if !step.Answer.OK() {
		return rec
	}
	rec.Available = true
	rec.Theme = step.Answer.Mode().String()
	if c, ok := step.Answer.Sample(); ok {
		rec.BG = colorutil.Hex(c)
	}
	return rec
}

// WriteTraceNDJSON streams one JSON object per probe.
func WriteTraceNDJSON(w io.Writer, steps []theme.Step) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, step := range steps {
		if err := enc.Encode(FromStep(step)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTraceTable prints an aligned SOURCE/BG/THEME table.
func WriteTraceTable(w io.Writer, steps []theme.Step, paint Painter) error {
	rows := make([][]string, 0, len(steps)+1)
	rows = append(rows, []string{"SOURCE", "BG", "THEME"})
	for _, step := range steps {
		rec := FromStep(step)
		var sample *colorutil.RGB
		if c, ok := step.Answer.Sample(); ok {
			sample = &c
		}
		mode := rec.Theme
		if !rec.Available {
			mode = notAvailable
		}
		rows = append(rows, []string{rec.Source, paint.paint(sample, rec.BG), mode})
	}
	for _, line := range textutil.Columns(rows, 2) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
