package main

import (
	"github.com/phyten/termtheme/internal/colorutil"
	"github.com/phyten/termtheme/internal/config"
	"github.com/phyten/termtheme/internal/output"
	"github.com/phyten/termtheme/internal/termcolor"
	"github.com/phyten/termtheme/internal/theme"
)

func (a *app) writeResult(settings config.Settings, res theme.Result) error {
	if settings.Output == "json" {
		return output.WriteJSON(a.stdout, res)
	}
	return output.WriteText(a.stdout, res, a.painter(settings.Color))
}

func (a *app) writeTrace(settings config.Settings, steps []theme.Step) error {
	if settings.Output == "json" {
		return output.WriteTraceNDJSON(a.stdout, steps)
	}
	return output.WriteTraceTable(a.stdout, steps, a.painter(settings.Color))
}

// painter returns a swatch painter when stdout takes color, nil otherwise.
func (a *app) painter(colorFlag string) output.Painter {
	out, err := termcolor.ResolveOutput(colorFlag, a.stdoutFile, a.env)
	if err != nil || !out.Enabled {
		return nil
	}
	return func(bg colorutil.RGB, text string) string {
		return termcolor.Apply(termcolor.SwatchStyle(bg, out.Profile), text, true)
	}
}
