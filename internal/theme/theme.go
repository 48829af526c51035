// Package theme decides whether the surrounding terminal has a dark or a light
// background by running an ordered list of probes and caching the first answer.
package theme

import (
	"strings"

	"github.com/phyten/termtheme/internal/colorutil"
)

// Mode is the binary background classification.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// ParseMode accepts "dark"/"light" and the "prefer-" spellings desktops use.
func ParseMode(raw string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dark", "prefer-dark":
		return Dark, true
	case "light", "prefer-light":
		return Light, true
	default:
		return Dark, false
	}
}

// Classify maps a background color to a Mode. Rec. 709 luma below one half is
// dark; exactly one half is light.
func Classify(c colorutil.RGB) Mode {
	if 2*colorutil.Luma709Scaled(c) < colorutil.Luma709Scale {
		return Dark
	}
	return Light
}

// Source names the probe that produced a Result. It is informational only.
type Source string

const (
	SourceConfig          Source = "config"
	SourceOSC             Source = "osc-11"
	SourceColorFGBG       Source = "COLORFGBG"
	SourceWindowsTerminal Source = "windows-terminal-settings"
	SourceConsoleRegistry Source = "winconsole-registry"
	SourceGnomeTerminal   Source = "gnome-terminal-profile"
	SourcePortal          Source = "xdg-portal-color-scheme"
	SourceGnomeInterface  Source = "gnome-color-scheme"
	SourceWindowsApps     Source = "windows-apps-theme"
	SourceDefault         Source = "default"
)

// Result is the outcome of a detection run. Sample is set only when a concrete
// background color decided the mode, in which case Mode == Classify(*Sample).
type Result struct {
	Mode   Mode
	Source Source
	Sample *colorutil.RGB
}

// Background renders the sample as "#rrggbb", or "n/a" without one.
func (r Result) Background() string {
	if r.Sample == nil {
		return "n/a"
	}
	return colorutil.Hex(*r.Sample)
}

func (r Result) clone() Result {
	if r.Sample != nil {
		c := *r.Sample
		r.Sample = &c
	}
	return r
}

// Answer is what a single probe reports: a color, a bare preference, or
// nothing at all.
type Answer struct {
	mode   Mode
	sample *colorutil.RGB
	ok     bool
}

// Found reports a concrete background color.
func Found(c colorutil.RGB) Answer {
	return Answer{mode: Classify(c), sample: &c, ok: true}
}

// Prefer reports a coarse preference without a color.
func Prefer(m Mode) Answer {
	return Answer{mode: m, ok: true}
}

// NotAvailable reports that the probe has no answer, whatever the reason.
func NotAvailable() Answer {
	return Answer{}
}

func (a Answer) OK() bool { return a.ok }

func (a Answer) Mode() Mode { return a.mode }

// Sample returns the reported color, if the probe saw one.
func (a Answer) Sample() (colorutil.RGB, bool) {
	if a.sample == nil {
		return colorutil.RGB{}, false
	}
	return *a.sample, true
}

func (a Answer) String() string {
	if !a.ok {
		return "n/a"
	}
	if a.sample != nil {
		return a.mode.String() + " " + colorutil.Hex(*a.sample)
	}
	return a.mode.String()
}

func (a Answer) result(src Source) Result {
	r := Result{Mode: a.mode, Source: src}
	if a.sample != nil {
		c := *a.sample
		r.Sample = &c
	}
	return r
}
