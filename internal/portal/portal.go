// Package portal reads the desktop color-scheme preference from the XDG
// Desktop Portal Settings interface on the session bus.
package portal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/phyten/termtheme/internal/logging"
	"github.com/phyten/termtheme/internal/theme"
)

const (
	portalDest        = "org.freedesktop.portal.Desktop"
	portalPath        = "/org/freedesktop/portal/desktop"
	settingsInterface = "org.freedesktop.portal.Settings"

	appearanceNamespace = "org.freedesktop.appearance"
	colorSchemeKey      = "color-scheme"

	// color-scheme values from the appearance namespace
	schemePreferDark  = 1
	schemePreferLight = 2
)

// DefaultTimeout bounds the whole bus exchange.
const DefaultTimeout = 250 * time.Millisecond

var ErrNoSessionBus = errors.New("no session bus")

// Reader performs Settings.Read(namespace, key).
type Reader interface {
	Read(ctx context.Context, namespace, key string) (dbus.Variant, error)
}

// SessionReader opens a private session-bus connection per call.
type SessionReader struct {
	Getenv func(string) string
}

func (r SessionReader) Read(ctx context.Context, namespace, key string) (dbus.Variant, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if !sessionBusConfigured(getenv) {
		return dbus.Variant{}, ErrNoSessionBus
	}

	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return dbus.Variant{}, fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	var v dbus.Variant
	obj := conn.Object(portalDest, portalPath)
	if err := obj.CallWithContext(ctx, settingsInterface+".Read", 0, namespace, key).Store(&v); err != nil {
		return dbus.Variant{}, fmt.Errorf("%s.Read %s %s: %w", settingsInterface, namespace, key, err)
	}
	return v, nil
}

// sessionBusConfigured avoids godbus falling back to autolaunching a bus
// daemon when none is advertised.
func sessionBusConfigured(getenv func(string) string) bool {
	if getenv("DBUS_SESSION_BUS_ADDRESS") != "" {
		return true
	}
	runtime := getenv("XDG_RUNTIME_DIR")
	if runtime == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(runtime, "bus"))
	return err == nil
}

// schemeFromVariant decodes a color-scheme value. Portal versions differ in
// how many variant layers wrap the integer.
func schemeFromVariant(v dbus.Variant) (theme.Mode, bool) {
	val := v.Value()
	for {
		inner, ok := val.(dbus.Variant)
		if !ok {
			break
		}
		val = inner.Value()
	}

	var n int64
	switch x := val.(type) {
	case uint32:
		n = int64(x)
	case int32:
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case int16:
		n = int64(x)
	case uint64:
		n = int64(x)
	case int64:
		n = x
	default:
		return theme.Dark, false
	}

	switch n {
	case schemePreferDark:
		return theme.Dark, true
	case schemePreferLight:
		return theme.Light, true
	}
	return theme.Dark, false
}

// Probe is the theme.Probe for the portal's color-scheme setting.
type Probe struct {
	Reader  Reader
	Timeout time.Duration
}

func NewProbe(timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Probe{Reader: SessionReader{}, Timeout: timeout}
}

func (*Probe) Source() theme.Source { return theme.SourcePortal }

func (p *Probe) Probe(ctx context.Context) theme.Answer {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := p.Reader.Read(ctx, appearanceNamespace, colorSchemeKey)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("portal: color-scheme unavailable")
		return theme.NotAvailable()
	}
	mode, ok := schemeFromVariant(v)
	if !ok {
		return theme.NotAvailable()
	}
	return theme.Prefer(mode)
}
