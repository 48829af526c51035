package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newProbesCmd(flags *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "probes",
		Short: "Run every probe in order and show what each one answered",
		Long: `Run every probe in order and show what each one answered.

Unlike the default command, probing does not stop at the first answer and
nothing is cached. Disabled probes are not listed. With --output json each
probe is printed as one JSON object per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, settings := a.setup(cmd, flags)
			return a.writeTrace(settings, a.detector(settings).Trace(ctx))
		},
	}
}
