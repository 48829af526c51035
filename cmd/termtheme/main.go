// Command termtheme reports whether the terminal has a dark or light
// background.
package main

import (
	"context"
	"os"
	"runtime"

	"github.com/phyten/termtheme/internal/platform"
	"github.com/phyten/termtheme/internal/termcolor"
)

func main() {
	a := &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		stdoutFile: os.Stdout,
		env:        termcolor.EnvMap(os.Environ()),
		goos:       runtime.GOOS,
		probes:     platform.Probes,
	}
	os.Exit(a.run(context.Background(), os.Args[1:]))
}
