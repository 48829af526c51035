package config

import "strings"

// Merge applies layers over base in order; later layers win.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Theme = ResolveAndTrim(out.Theme, layer.Detect.Theme)
		out.OSCTimeout = ResolveDuration(out.OSCTimeout, layer.Detect.OSCTimeout)
		out.IPCTimeout = ResolveDuration(out.IPCTimeout, layer.Detect.IPCTimeout)
		out.Disable = ResolveStrings(out.Disable, layer.Detect.Disable)
		out.Output = ResolveAndTrim(out.Output, layer.Detect.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Detect.Color)
		out.LogLevel = ResolveAndTrim(out.LogLevel, layer.Log.Level)
		out.LogFormat = ResolveAndTrim(out.LogFormat, layer.Log.Format)
	}
	if strings.TrimSpace(out.Theme) == "" {
		out.Theme = "auto"
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "text"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
