package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phyten/termtheme/internal/config"
	"github.com/phyten/termtheme/internal/logging"
	"github.com/phyten/termtheme/internal/platform"
	"github.com/phyten/termtheme/internal/theme"
)

const exitUsage = 2

// app carries the process surroundings so tests can replace them. stdoutFile
// backs the TTY check for --color auto; nil means stdout is not a terminal.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	stdoutFile *os.File
	env        map[string]string
	goos       string
	probes     func(goos string, opts platform.Options) []theme.Probe
}

type flagValues struct {
	config     string
	theme      string
	oscTimeout string
	ipcTimeout string
	disable    []string
	output     string
	color      string
	logLevel   string
	logFormat  string
}

// run executes the command line and returns the process exit code. Detection
// itself never fails; only malformed command lines exit non-zero.
func (a *app) run(ctx context.Context, args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "termtheme: %v\n", err)
		return exitUsage
	}
	return 0
}

func (a *app) newRootCmd() *cobra.Command {
	var flags flagValues

	root := &cobra.Command{
		Use:   "termtheme",
		Short: "Report whether the terminal background is dark or light",
		Long: `Report whether the terminal background is dark or light.

The terminal is asked for its background color first; environment hints,
terminal profiles and desktop preferences follow. Without any answer the
theme is dark.

Output:
  theme=<dark|light> source=<probe> bg=<#rrggbb|n/a>`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, settings := a.setup(cmd, &flags)
			res := a.detector(settings).Detect(ctx)
			return a.writeResult(settings, res)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "config file (default: $XDG_CONFIG_HOME/termtheme/config.*, ~/.termtheme.*)")
	pf.StringVar(&flags.theme, "theme", "auto", "auto|dark|light; dark or light skips detection")
	pf.StringVar(&flags.oscTimeout, "osc-timeout", "", "wait for the terminal reply (e.g. 500ms; bare numbers are milliseconds)")
	pf.StringVar(&flags.ipcTimeout, "ipc-timeout", "", "bound each desktop settings lookup")
	pf.StringSliceVar(&flags.disable, "disable", nil, "comma-separated probe sources to skip (see 'termtheme probes')")
	pf.StringVar(&flags.output, "output", "text", "text|json")
	pf.StringVar(&flags.color, "color", "auto", "auto|always|never")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "trace|debug|info|warn|error|off")
	pf.StringVar(&flags.logFormat, "log-format", "console", "console|json")

	root.AddCommand(a.newProbesCmd(&flags))
	return root
}

// setup resolves settings from file, environment and flags, installs the
// logger, and reports configuration problems without stopping.
func (a *app) setup(cmd *cobra.Command, flags *flagValues) (context.Context, config.Settings) {
	settings, origin, errs := a.loadSettings(cmd, flags)
	for _, err := range errs {
		fmt.Fprintf(a.stderr, "termtheme: config: %v\n", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level, _ = logging.ParseLevel(settings.LogLevel)
	logCfg.Format = settings.LogFormat
	logCfg.Out = a.stderr
	logger := logging.New(logCfg)
	ctx := logging.WithContext(cmd.Context(), logger)
	ctx = logging.WithComponent(ctx, "detect")
	if origin != "" {
		logging.FromContext(ctx).Debug().Str("config", origin).Msg("loaded config file")
	}

	if unknown := platform.UnknownSources(a.goos, settings.Disable); len(unknown) > 0 {
		logging.FromContext(ctx).Warn().Strs("names", unknown).Msg("ignoring unknown probe names in disable list")
	}
	return ctx, settings
}

// loadSettings layers the config file, TERMTHEME_* variables and explicit
// flags over the defaults. origin is "<where>:<path>" when a file was used.
func (a *app) loadSettings(cmd *cobra.Command, flags *flagValues) (settings config.Settings, origin string, errs []error) {
	explicit := flags.config
	if !cmd.Flags().Changed("config") {
		explicit = a.env["TERMTHEME_CONFIG"]
	}
	var fileCfg config.Config
	path, where, err := config.Find(explicit, a.env["XDG_CONFIG_HOME"], a.env["HOME"])
	if err != nil {
		errs = append(errs, err)
	} else if path != "" {
		fileCfg, err = config.Load(path)
		if err != nil {
			errs = append(errs, err)
			fileCfg = config.Config{}
		} else {
			origin = where + ":" + path
		}
	}

	envCfg, err := config.FromEnv(func(k string) string { return a.env[k] })
	if err != nil {
		errs = append(errs, err)
	}

	flagCfg, err := flagLayer(cmd, flags)
	if err != nil {
		errs = append(errs, err)
	}

	merged := config.Merge(config.DefaultSettings(), fileCfg, envCfg, flagCfg)
	settings, err = config.Normalize(merged)
	if err != nil {
		errs = append(errs, err)
	}
	return settings, origin, errs
}

// flagLayer converts explicitly set flags into a config layer.
func flagLayer(cmd *cobra.Command, flags *flagValues) (config.Config, error) {
	var cfg config.Config
	var errs []error
	changed := cmd.Flags().Changed

	if changed("theme") {
		v := flags.theme
		cfg.Detect.Theme = &v
	}
	if changed("osc-timeout") {
		d, err := config.ParseDuration(flags.oscTimeout, "--osc-timeout")
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Detect.OSCTimeout = &d
		}
	}
	if changed("ipc-timeout") {
		d, err := config.ParseDuration(flags.ipcTimeout, "--ipc-timeout")
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Detect.IPCTimeout = &d
		}
	}
	if changed("disable") {
		list := config.SplitList(strings.Join(flags.disable, ","))
		cfg.Detect.Disable = &list
	}
	if changed("output") {
		v := flags.output
		cfg.Detect.Output = &v
	}
	if changed("color") {
		v := flags.color
		cfg.Detect.Color = &v
	}
	if changed("log-level") {
		v := flags.logLevel
		cfg.Log.Level = &v
	}
	if changed("log-format") {
		v := flags.logFormat
		cfg.Log.Format = &v
	}
	return cfg, errors.Join(errs...)
}

func (a *app) platformOptions(settings config.Settings) platform.Options {
	return platform.Options{
		Theme:      settings.Theme,
		OSCTimeout: settings.OSCTimeout,
		IPCTimeout: settings.IPCTimeout,
		Disable:    settings.Disable,
		Getenv:     func(k string) string { return a.env[k] },
	}
}

func (a *app) detector(settings config.Settings) *theme.Detector {
	return theme.NewDetector(a.probes(a.goos, a.platformOptions(settings))...)
}
