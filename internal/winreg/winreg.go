// Package winreg reads background hints from the current user's registry:
// the classic console color table and the apps light/dark preference.
package winreg

import (
	"context"
	"errors"
	"fmt"

	"github.com/phyten/termtheme/internal/colorutil"
	"github.com/phyten/termtheme/internal/logging"
	"github.com/phyten/termtheme/internal/theme"
)

const (
	ConsolePath     = `Console`
	PersonalizePath = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
)

// ErrUnsupported is returned by OpenCurrentUser where there is no registry.
var ErrUnsupported = errors.New("registry not available on this platform")

// Key is an open registry key.
type Key interface {
	// DWORD reports the named value when it exists with REG_DWORD type.
	DWORD(name string) (uint32, bool)
	Close() error
}

// Opener opens a key below HKEY_CURRENT_USER for reading.
type Opener func(path string) (Key, error)

// FromCOLORREF decodes a 0x00BBGGRR value.
func FromCOLORREF(v uint32) colorutil.RGB {
	return colorutil.RGB{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
	}
}

// ConsoleBackground resolves the console's DefaultBackground index through its
// ColorTableNN entries.
func ConsoleBackground(open Opener) (colorutil.RGB, bool, error) {
	k, err := open(ConsolePath)
	if err != nil {
		return colorutil.RGB{}, false, fmt.Errorf("open HKCU\\%s: %w", ConsolePath, err)
	}
	defer k.Close()

	idx, ok := k.DWORD("DefaultBackground")
	if !ok {
		idx = 0
	}
	if idx > 15 {
		return colorutil.RGB{}, false, nil
	}
	ref, ok := k.DWORD(fmt.Sprintf("ColorTable%02d", idx))
	if !ok {
		return colorutil.RGB{}, false, nil
	}
	return FromCOLORREF(ref), true, nil
}

// AppsTheme reads AppsUseLightTheme: nonzero means light.
func AppsTheme(open Opener) (theme.Mode, bool, error) {
	k, err := open(PersonalizePath)
	if err != nil {
		return theme.Dark, false, fmt.Errorf("open HKCU\\%s: %w", PersonalizePath, err)
	}
	defer k.Close()

	v, ok := k.DWORD("AppsUseLightTheme")
	if !ok {
		return theme.Dark, false, nil
	}
	if v != 0 {
		return theme.Light, true, nil
	}
	return theme.Dark, true, nil
}

// ConsoleProbe answers with the classic console's default background.
type ConsoleProbe struct {
	Open Opener
}

func NewConsoleProbe() *ConsoleProbe { return &ConsoleProbe{Open: OpenCurrentUser} }

func (*ConsoleProbe) Source() theme.Source { return theme.SourceConsoleRegistry }

func (p *ConsoleProbe) Probe(ctx context.Context) theme.Answer {
	bg, ok, err := ConsoleBackground(p.Open)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("winreg: console colors unavailable")
		return theme.NotAvailable()
	}
	if !ok {
		return theme.NotAvailable()
	}
	return theme.Found(bg)
}

// AppsThemeProbe answers with the OS-wide app theme preference.
type AppsThemeProbe struct {
	Open Opener
}

func NewAppsThemeProbe() *AppsThemeProbe { return &AppsThemeProbe{Open: OpenCurrentUser} }

func (*AppsThemeProbe) Source() theme.Source { return theme.SourceWindowsApps }

func (p *AppsThemeProbe) Probe(ctx context.Context) theme.Answer {
	mode, ok, err := AppsTheme(p.Open)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("winreg: theme preference unavailable")
		return theme.NotAvailable()
	}
	if !ok {
		return theme.NotAvailable()
	}
	return theme.Prefer(mode)
}
