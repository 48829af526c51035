// Package gnome reads GNOME settings through gsettings: the default GNOME
// Terminal profile's background and the desktop color-scheme preference.
package gnome

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phyten/termtheme/internal/colorutil"
	"github.com/phyten/termtheme/internal/execx"
	"github.com/phyten/termtheme/internal/logging"
	"github.com/phyten/termtheme/internal/theme"
)

// DefaultTimeout bounds each gsettings invocation.
const DefaultTimeout = 200 * time.Millisecond

const (
	profilesListSchema = "org.gnome.Terminal.ProfilesList"
	profileSchemaPath  = "org.gnome.Terminal.Legacy.Profile:/org/gnome/terminal/legacy/profiles:/:%s/"
	interfaceSchema    = "org.gnome.desktop.interface"
)

// Settings reads keys through the gsettings command.
type Settings struct {
	Runner  execx.Runner
	Timeout time.Duration
}

// NewSettings uses the real gsettings binary with the given per-call timeout.
func NewSettings(timeout time.Duration) *Settings {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Settings{Runner: execx.DefaultRunner(), Timeout: timeout}
}

// Get returns the printed GVariant value of schema key, e.g. "'prefer-dark'".
func (s *Settings) Get(ctx context.Context, schema, key string) (string, error) {
	return execx.Output(ctx, s.Runner, s.Timeout, "gsettings", "get", schema, key)
}

// unquote strips the single quotes gsettings prints around strings.
func unquote(v string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(v), "'"))
}

// TerminalBackground returns the background of the default GNOME Terminal
// profile. ok is false when the profile follows the desktop theme.
func TerminalBackground(ctx context.Context, s *Settings) (bg colorutil.RGB, ok bool, err error) {
	out, err := s.Get(ctx, profilesListSchema, "default")
	if err != nil {
		return bg, false, err
	}
	uuid := unquote(out)
	if uuid == "" {
		return bg, false, nil
	}
	schema := fmt.Sprintf(profileSchemaPath, uuid)

	useTheme, err := s.Get(ctx, schema, "use-theme-colors")
	if err != nil {
		return bg, false, err
	}
	if strings.EqualFold(strings.TrimSpace(useTheme), "true") {
		return bg, false, nil
	}

	raw, err := s.Get(ctx, schema, "background-color")
	if err != nil {
		return bg, false, err
	}
	bg, ok = colorutil.Parse(unquote(raw))
	return bg, ok, nil
}

// ColorScheme maps org.gnome.desktop.interface color-scheme to a mode.
// "default" has no preference.
func ColorScheme(ctx context.Context, s *Settings) (theme.Mode, bool, error) {
	out, err := s.Get(ctx, interfaceSchema, "color-scheme")
	if err != nil {
		return theme.Dark, false, err
	}
	switch {
	case strings.Contains(out, "prefer-dark"):
		return theme.Dark, true, nil
	case strings.Contains(out, "prefer-light"):
		return theme.Light, true, nil
	}
	return theme.Dark, false, nil
}

// TerminalProbe answers from the GNOME Terminal profile.
type TerminalProbe struct {
	Settings *Settings
}

func (*TerminalProbe) Source() theme.Source { return theme.SourceGnomeTerminal }

func (p *TerminalProbe) Probe(ctx context.Context) theme.Answer {
	bg, ok, err := TerminalBackground(ctx, p.Settings)
	if err != nil {
		logUnavailable(ctx, "terminal profile", err)
		return theme.NotAvailable()
	}
	if !ok {
		return theme.NotAvailable()
	}
	return theme.Found(bg)
}

// InterfaceProbe answers from the desktop color-scheme preference.
type InterfaceProbe struct {
	Settings *Settings
}

func (*InterfaceProbe) Source() theme.Source { return theme.SourceGnomeInterface }

func (p *InterfaceProbe) Probe(ctx context.Context) theme.Answer {
	mode, ok, err := ColorScheme(ctx, p.Settings)
	if err != nil {
		logUnavailable(ctx, "color-scheme", err)
		return theme.NotAvailable()
	}
	if !ok {
		return theme.NotAvailable()
	}
	return theme.Prefer(mode)
}

func logUnavailable(ctx context.Context, what string, err error) {
	log := logging.FromContext(ctx)
	if execx.IsNotFound(err) {
		log.Debug().Msg("gnome: gsettings not installed")
		return
	}
	log.Debug().Err(err).Msgf("gnome: %s unavailable", what)
}
