package config

import "time"

type DetectConfig struct {
	Theme      *string        `yaml:"theme" toml:"theme" json:"theme"`
	OSCTimeout *time.Duration `yaml:"osc_timeout" toml:"osc_timeout" json:"osc_timeout"`
	IPCTimeout *time.Duration `yaml:"ipc_timeout" toml:"ipc_timeout" json:"ipc_timeout"`
	Disable    *[]string      `yaml:"disable" toml:"disable" json:"disable"`
	Output     *string        `yaml:"output" toml:"output" json:"output"`
	Color      *string        `yaml:"color" toml:"color" json:"color"`
}

type LogConfig struct {
	Level  *string `yaml:"level" toml:"level" json:"level"`
	Format *string `yaml:"format" toml:"format" json:"format"`
}

// Config is one layer of settings. Nil fields leave lower layers untouched.
type Config struct {
	Detect DetectConfig `yaml:"detect" toml:"detect" json:"detect"`
	Log    LogConfig    `yaml:"log" toml:"log" json:"log"`
}

// Settings is the merged, validated configuration.
type Settings struct {
	// Theme is "auto", "dark" or "light". Anything but auto forces the answer.
	Theme string
	// Zero timeouts leave each probe on its own default.
	OSCTimeout time.Duration
	IPCTimeout time.Duration
	Disable    []string
	Output     string
	Color      string
	LogLevel   string
	LogFormat  string
}

func DefaultSettings() Settings {
	return Settings{
		Theme:     "auto",
		Output:    "text",
		Color:     "auto",
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
