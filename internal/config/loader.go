package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var detectKeyMap = map[string]string{
	"theme":       "theme",
	"mode":        "theme",
	"osc_timeout": "osc_timeout",
	"ipc_timeout": "ipc_timeout",
	"disable":     "disable",
	"disabled":    "disable",
	"output":      "output",
	"color":       "color",
}

var logKeyMap = map[string]string{
	"level":  "level",
	"format": "format",
}

// Top-level spellings of the log section keys.
var flatLogKeyMap = map[string]string{
	"log_level":  "level",
	"log_format": "format",
}

// Load reads a YAML, TOML or JSON file chosen by extension. An empty path
// yields an empty layer.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	detectSection := make(map[string]any)
	logSection := make(map[string]any)

	if block, ok := raw["detect"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("detect: %w", err)
		}
		if err := fillSection(detectSection, sub, detectKeyMap, "detect"); err != nil {
			return cfg, err
		}
	}
	if block, ok := raw["log"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("log: %w", err)
		}
		if err := fillSection(logSection, sub, logKeyMap, "log"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "detect", "log":
			continue
		default:
			if canonical, ok := detectKeyMap[norm]; ok {
				detectSection[canonical] = value
				continue
			}
			if canonical, ok := flatLogKeyMap[norm]; ok {
				logSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignDetect(detectSection, &cfg.Detect); err != nil {
		return cfg, fmt.Errorf("detect: %w", err)
	}
	if err := assignLog(logSection, &cfg.Log); err != nil {
		return cfg, fmt.Errorf("log: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignDetect(section map[string]any, dst *DetectConfig) error {
	for key, value := range section {
		switch key {
		case "theme":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Theme = &trimmed
		case "osc_timeout":
			d, err := expectDuration(value, key)
			if err != nil {
				return err
			}
			dst.OSCTimeout = &d
		case "ipc_timeout":
			d, err := expectDuration(value, key)
			if err != nil {
				return err
			}
			dst.IPCTimeout = &d
		case "disable":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Disable = &list
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignLog(section map[string]any, dst *LogConfig) error {
	for key, value := range section {
		switch key {
		case "level":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Level = &str
		case "format":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Format = &str
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

// expectDuration accepts a Go duration string ("250ms", "1.5s") or a bare
// number of milliseconds.
func expectDuration(value any, field string) (time.Duration, error) {
	switch v := value.(type) {
	case string:
		return ParseDuration(v, field)
	case int:
		return millis(float64(v), field)
	case int64:
		return millis(float64(v), field)
	case uint64:
		return millis(float64(v), field)
	case float64:
		return millis(v, field)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %v", field, value)
		}
		return millis(f, field)
	default:
		return 0, fmt.Errorf("expected duration for %s, got %T", field, value)
	}
}

// ParseDuration parses a duration literal; unit-less numbers are milliseconds.
func ParseDuration(raw, field string) (time.Duration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("invalid duration for %s: %q", field, raw)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return millis(f, field)
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", field, raw)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must be >= 0", field)
	}
	return d, nil
}

func millis(ms float64, field string) (time.Duration, error) {
	if math.IsNaN(ms) || ms < 0 {
		return 0, fmt.Errorf("%s must be >= 0", field)
	}
	if ms > float64(math.MaxInt64/int64(time.Millisecond)) {
		return 0, fmt.Errorf("%s is too large", field)
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return SplitList(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

// SplitList splits a comma-separated value, dropping empty items.
func SplitList(raw string) []string {
	return normalizeList(strings.Split(raw, ","))
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
