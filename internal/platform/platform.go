// Package platform assembles the ordered probe list for an operating system.
package platform

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/phyten/termtheme/internal/gnome"
	"github.com/phyten/termtheme/internal/logging"
	"github.com/phyten/termtheme/internal/osc"
	"github.com/phyten/termtheme/internal/portal"
	"github.com/phyten/termtheme/internal/termcolor"
	"github.com/phyten/termtheme/internal/theme"
	"github.com/phyten/termtheme/internal/winreg"
	"github.com/phyten/termtheme/internal/wtsettings"
)

// Options tune the probe list. The zero value detects everything with the
// default timeouts.
type Options struct {
	// Theme "dark" or "light" answers before any probe runs.
	Theme string
	// OSCTimeout bounds the terminal reply; zero keeps osc.DefaultTimeout.
	OSCTimeout time.Duration
	// IPCTimeout bounds each gsettings call and the portal call; zero keeps
	// their own defaults.
	IPCTimeout time.Duration
	// Disable names sources to skip, compared case-insensitively.
	Disable []string
	Getenv  func(string) string
}

// Sources lists, in order, the probe sources used on goos.
func Sources(goos string) []theme.Source {
	if goos == "windows" {
		return []theme.Source{
			theme.SourceColorFGBG,
			theme.SourceWindowsTerminal,
			theme.SourceConsoleRegistry,
			theme.SourceWindowsApps,
		}
	}
	return []theme.Source{
		theme.SourceOSC,
		theme.SourceColorFGBG,
		theme.SourceGnomeTerminal,
		theme.SourcePortal,
		theme.SourceGnomeInterface,
	}
}

// Probes builds the probe list for goos. A forced theme is prepended as a
// probe tagged "config".
func Probes(goos string, opts Options) []theme.Probe {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var all []theme.Probe
	if mode, ok := forcedMode(opts.Theme); ok {
		all = append(all, theme.ProbeFunc(theme.SourceConfig, func(context.Context) theme.Answer {
			return theme.Prefer(mode)
		}))
	}

	colorFGBG := ColorFGBGProbe(getenv)
	if goos == "windows" {
		wt := wtsettings.NewProbe()
		wt.Getenv = getenv
		all = append(all,
			colorFGBG,
			wt,
			winreg.NewConsoleProbe(),
			winreg.NewAppsThemeProbe(),
		)
	} else {
		settings := gnome.NewSettings(opts.IPCTimeout)
		all = append(all,
			osc.NewProbe(opts.OSCTimeout),
			colorFGBG,
			&gnome.TerminalProbe{Settings: settings},
			portal.NewProbe(opts.IPCTimeout),
			&gnome.InterfaceProbe{Settings: settings},
		)
	}
	return withoutDisabled(all, opts.Disable)
}

// NewDetector returns a Detector for the running OS.
func NewDetector(opts Options) *theme.Detector {
	return theme.NewDetector(Probes(runtime.GOOS, opts)...)
}

// ColorFGBGProbe answers from the COLORFGBG environment variable.
func ColorFGBGProbe(getenv func(string) string) theme.Probe {
	return theme.ProbeFunc(theme.SourceColorFGBG, func(ctx context.Context) theme.Answer {
		raw := getenv("COLORFGBG")
		if raw == "" {
			return theme.NotAvailable()
		}
		bg, ok := termcolor.ColorFGBG(raw)
		if !ok {
			logging.FromContext(ctx).Debug().Str("COLORFGBG", raw).Msg("platform: unusable COLORFGBG")
			return theme.NotAvailable()
		}
		return theme.Found(bg)
	})
}

// UnknownSources returns the names in disable that match no probe on goos.
func UnknownSources(goos string, disable []string) []string {
	known := make(map[string]struct{})
	for _, src := range Sources(goos) {
		known[strings.ToLower(string(src))] = struct{}{}
	}
	known[string(theme.SourceConfig)] = struct{}{}

	var unknown []string
	for _, name := range disable {
		if _, ok := known[strings.ToLower(strings.TrimSpace(name))]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func forcedMode(raw string) (theme.Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dark":
		return theme.Dark, true
	case "light":
		return theme.Light, true
	}
	return theme.Dark, false
}

func withoutDisabled(probes []theme.Probe, disable []string) []theme.Probe {
	if len(disable) == 0 {
		return probes
	}
	skip := make(map[string]struct{}, len(disable))
	for _, name := range disable {
		skip[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	out := probes[:0]
	for _, p := range probes {
		if _, ok := skip[strings.ToLower(string(p.Source()))]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}
