package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/phyten/termtheme/internal/logging"
)

// MaxTimeout caps both probe timeouts.
const MaxTimeout = 10 * time.Second

func CanonicalizeTheme(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "auto":
		return "auto", nil
	case "dark", "light":
		return v, nil
	default:
		return "", fmt.Errorf("invalid theme: %s", raw)
	}
}

func CanonicalizeOutput(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "text":
		return "text", nil
	case "json":
		return v, nil
	default:
		return "", fmt.Errorf("invalid output: %s", raw)
	}
}

func CanonicalizeColor(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return v, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

func ValidateTimeout(d time.Duration, field string) error {
	if d < 0 || d > MaxTimeout {
		return fmt.Errorf("%s must be between 0 and %s", field, MaxTimeout)
	}
	return nil
}

// Normalize canonicalizes values. Every invalid field is reported and reset
// to its default, so the returned Settings are always usable.
func Normalize(values Settings) (Settings, error) {
	def := DefaultSettings()
	var errs []error

	canon := func(target *string, fallback string, fn func(string) (string, error)) {
		v, err := fn(*target)
		if err != nil {
			errs = append(errs, err)
			*target = fallback
			return
		}
		*target = v
	}
	canon(&values.Theme, def.Theme, CanonicalizeTheme)
	canon(&values.Output, def.Output, CanonicalizeOutput)
	canon(&values.Color, def.Color, CanonicalizeColor)

	if err := ValidateTimeout(values.OSCTimeout, "osc_timeout"); err != nil {
		errs = append(errs, err)
		values.OSCTimeout = def.OSCTimeout
	}
	if err := ValidateTimeout(values.IPCTimeout, "ipc_timeout"); err != nil {
		errs = append(errs, err)
		values.IPCTimeout = def.IPCTimeout
	}

	if _, err := logging.ParseLevel(values.LogLevel); err != nil {
		errs = append(errs, err)
		values.LogLevel = def.LogLevel
	}
	if format, err := logging.ParseFormat(values.LogFormat); err != nil {
		errs = append(errs, err)
		values.LogFormat = def.LogFormat
	} else {
		values.LogFormat = format
	}

	values.Disable = normalizeList(values.Disable)
	return values, errors.Join(errs...)
}
