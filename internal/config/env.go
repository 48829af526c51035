package config

import (
	"errors"
	"strings"
	"time"
)

// FromEnv builds a layer from TERMTHEME_* variables. Malformed values are
// skipped and reported together.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := SplitList(raw)
		*target = &list
	}
	setDuration := func(target **time.Duration, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		d, err := ParseDuration(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &d
	}

	setString(&cfg.Detect.Theme, "TERMTHEME_THEME")
	setDuration(&cfg.Detect.OSCTimeout, "TERMTHEME_OSC_TIMEOUT")
	setDuration(&cfg.Detect.IPCTimeout, "TERMTHEME_IPC_TIMEOUT")
	setList(&cfg.Detect.Disable, "TERMTHEME_DISABLE")
	setString(&cfg.Detect.Output, "TERMTHEME_OUTPUT")
	setString(&cfg.Detect.Color, "TERMTHEME_COLOR")
	setString(&cfg.Log.Level, "TERMTHEME_LOG_LEVEL")
	setString(&cfg.Log.Format, "TERMTHEME_LOG_FORMAT")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
