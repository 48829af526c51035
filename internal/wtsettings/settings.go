// Package wtsettings reads the active Windows Terminal profile's background
// color from the terminal's settings.json.
package wtsettings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/phyten/termtheme/internal/colorutil"
)

// ErrNoProfile is returned when a settings file names neither the requested
// profile nor usable defaults.
var ErrNoProfile = errors.New("no matching profile")

// CandidatePaths lists where each Windows Terminal flavour keeps its settings,
// stable first.
func CandidatePaths(localAppData string) []string {
	if localAppData == "" {
		return nil
	}
	return []string{
		filepath.Join(localAppData, "Packages", "Microsoft.WindowsTerminal_8wekyb3d8bbwe", "LocalState", "settings.json"),
		filepath.Join(localAppData, "Packages", "Microsoft.WindowsTerminalPreview_8wekyb3d8bbwe", "LocalState", "settings.json"),
		filepath.Join(localAppData, "Packages", "WindowsTerminalDev_6q6wn7rc29ae4", "LocalState", "settings.json"),
		filepath.Join(localAppData, "Microsoft", "Windows Terminal", "settings.json"),
	}
}

type settingsFile struct {
	Profiles json.RawMessage `json:"profiles"`
	Schemes  []scheme        `json:"schemes"`
}

type profileSet struct {
	Defaults *profile  `json:"defaults"`
	List     []profile `json:"list"`
}

// profile fields are raw so that values of an unexpected type (newer releases
// allow colorScheme to be an object) only disable that field.
type profile struct {
	GUID        json.RawMessage `json:"guid"`
	Background  json.RawMessage `json:"background"`
	ColorScheme json.RawMessage `json:"colorScheme"`
}

type scheme struct {
	Name       string          `json:"name"`
	Background json.RawMessage `json:"background"`
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func (p *profile) empty() bool {
	return p == nil || (len(p.GUID) == 0 && len(p.Background) == 0 && len(p.ColorScheme) == 0)
}

func (p *profile) hasColor() bool {
	return len(p.Background) > 0 || len(p.ColorScheme) > 0
}

// Background returns the background of profileID as configured in data.
// data may contain comments and trailing commas.
func Background(data []byte, profileID string) (colorutil.RGB, bool, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return colorutil.RGB{}, false, fmt.Errorf("standardize settings: %w", err)
	}
	var s settingsFile
	if err := json.Unmarshal(std, &s); err != nil {
		return colorutil.RGB{}, false, fmt.Errorf("decode settings: %w", err)
	}

	defaults, list, err := splitProfiles(s.Profiles)
	if err != nil {
		return colorutil.RGB{}, false, err
	}

	target := findProfile(list, profileID)
	switch {
	case target == nil:
		if defaults.empty() {
			return colorutil.RGB{}, false, ErrNoProfile
		}
		target = defaults
	case !target.hasColor() && !defaults.empty():
		target = defaults
	}

	if bg, ok := rawString(target.Background); ok {
		if c, ok := colorutil.ParseHex(bg); ok {
			return c, true, nil
		}
	}
	if name, ok := rawString(target.ColorScheme); ok && name != "" {
		for _, sc := range s.Schemes {
			if sc.Name != name {
				continue
			}
			if bg, ok := rawString(sc.Background); ok {
				if c, ok := colorutil.ParseHex(bg); ok {
					return c, true, nil
				}
			}
		}
	}
	return colorutil.RGB{}, false, nil
}

func splitProfiles(raw json.RawMessage) (*profile, []profile, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil, nil
	}
	if raw[0] == '[' {
		var list []profile
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, nil, fmt.Errorf("decode profiles: %w", err)
		}
		return nil, list, nil
	}
	var set profileSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, nil, fmt.Errorf("decode profiles: %w", err)
	}
	return set.Defaults, set.List, nil
}

func findProfile(list []profile, id string) *profile {
	for i := range list {
		guid, ok := rawString(list[i].GUID)
		if ok && strings.EqualFold(guid, id) {
			return &list[i]
		}
	}
	return nil
}
