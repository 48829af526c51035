package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/phyten/termtheme/internal/colorutil"
	"github.com/phyten/termtheme/internal/theme"
)

var solarized = colorutil.RGB{R: 0x00, G: 0x2b, B: 0x36}

func brackets(_ colorutil.RGB, text string) string { return "[" + text + "]" }

func TestWriteText(t *testing.T) {
	cases := []struct {
		name  string
		res   theme.Result
		paint Painter
		want  string
	}{
		{
			name: "Sample",
			res:  theme.Result{Mode: theme.Dark, Source: theme.SourceGnomeTerminal, Sample: &solarized},
			want: "theme=dark source=gnome-terminal-profile bg=#002b36\n",
		},
		{
			name:  "PaintedSample",
			res:   theme.Result{Mode: theme.Dark, Source: theme.SourceOSC, Sample: &solarized},
			paint: brackets,
			want:  "theme=dark source=osc-11 bg=[#002b36]\n",
		},
		{
			name:  "PreferenceIsNeverPainted",
			res:   theme.Result{Mode: theme.Light, Source: theme.SourcePortal},
			paint: brackets,
			want:  "theme=light source=xdg-portal-color-scheme bg=n/a\n",
		},
		{
			name: "Default",
			res:  theme.Result{Mode: theme.Dark, Source: theme.SourceDefault},
			want: "theme=dark source=default bg=n/a\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteText(&buf, tc.res, tc.paint); err != nil {
				t.Fatalf("WriteText error: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("WriteText = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	res := theme.Result{Mode: theme.Light, Source: theme.SourceColorFGBG, Sample: &colorutil.RGB{R: 255, G: 255, B: 255}}
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	if got, want := buf.String(), `{"theme":"light","source":"COLORFGBG","bg":"#ffffff"}`+"\n"; got != want {
		t.Fatalf("WriteJSON = %q, want %q", got, want)
	}
}

func traceSteps() []theme.Step {
	return []theme.Step{
		{Source: theme.SourceOSC, Answer: theme.NotAvailable()},
		{Source: theme.SourceColorFGBG, Answer: theme.Found(solarized)},
		{Source: theme.SourcePortal, Answer: theme.Prefer(theme.Light)},
	}
}

func TestWriteTraceNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTraceNDJSON(&buf, traceSteps()); err != nil {
		t.Fatalf("WriteTraceNDJSON error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	want := []StepRecord{
		{Source: "osc-11", BG: "n/a"},
		{Source: "COLORFGBG", Available: true, Theme: "dark", BG: "#002b36"},
		{Source: "xdg-portal-color-scheme", Available: true, Theme: "light", BG: "n/a"},
	}
	for i, line := range lines {
		var got StepRecord
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if got != want[i] {
			t.Fatalf("line %d = %+v, want %+v", i, got, want[i])
		}
	}
	if strings.Contains(lines[0], `"theme"`) {
		t.Fatalf("unanswered probe should omit theme: %s", lines[0])
	}
}

func TestWriteTraceTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTraceTable(&buf, traceSteps(), brackets); err != nil {
		t.Fatalf("WriteTraceTable error: %v", err)
	}
	want := "" +
		"SOURCE                   BG         THEME\n" +
		"osc-11                   n/a        n/a\n" +
		"COLORFGBG                [#002b36]  dark\n" +
		"xdg-portal-color-scheme  n/a        light\n"
	if got := buf.String(); got != want {
		t.Fatalf("WriteTraceTable =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteTraceTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTraceTable(&buf, nil, nil); err != nil {
		t.Fatalf("WriteTraceTable error: %v", err)
	}
	if got := buf.String(); got != "SOURCE  BG  THEME\n" {
		t.Fatalf("WriteTraceTable(nil) = %q", got)
	}
}
