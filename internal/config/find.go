package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	configFilenames = []string{
		".termtheme.yaml",
		".termtheme.yml",
		".termtheme.toml",
		".termtheme.json",
	}
	xdgFilenames = []string{
		"config.yaml",
		"config.yml",
		"config.toml",
		"config.json",
	}
)

// Find locates the configuration file: the explicit path, then
// <xdg>/termtheme/config.*, then ~/.termtheme.*. The second result names
// where it was found ("explicit", "xdg" or "home"); both are empty when there
// is no file.
func Find(explicitPath, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		candidate := explicit
		if !filepath.IsAbs(candidate) {
			cwd, err := os.Getwd()
			if err != nil {
				return "", "", err
			}
			candidate = filepath.Join(cwd, candidate)
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", "", err
		}
		if info.IsDir() {
			return "", "", fmt.Errorf("config path %q is a directory", candidate)
		}
		return candidate, "explicit", nil
	}

	homeDir := strings.TrimSpace(home)
	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" {
		if homeDir != "" {
			xdgRoot = filepath.Join(homeDir, ".config")
		} else if dir, err := os.UserConfigDir(); err == nil {
			xdgRoot = dir
		}
	}
	if xdgRoot != "" {
		for _, name := range xdgFilenames {
			candidate := filepath.Join(xdgRoot, "termtheme", name)
			if fileExists(candidate) {
				return candidate, "xdg", nil
			}
		}
	}

	if homeDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			homeDir = h
		}
	}
	if homeDir != "" {
		for _, name := range configFilenames {
			candidate := filepath.Join(homeDir, name)
			if fileExists(candidate) {
				return candidate, "home", nil
			}
		}
	}

	return "", "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
