package main

import (
	"github.com/spf13/cobra"

	"encodewatch/internal/daemonrun"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var once bool
	var development bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scan and encode loop in the foreground",
		Long: `Run the scan and encode loop in the foreground.

The loop encodes one job at a time, re-scans immediately after each job, and
sleeps for the check interval when nothing is found. Any job failure stops the
loop with exit status 65. SIGINT or SIGTERM stops it cleanly between jobs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoopWith(cmd, ctx, daemonrun.Options{Once: once, Development: development})
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "Run a single scan and encode iteration and exit")
	cmd.Flags().BoolVar(&development, "dev", false, "Include source locations in log output")
	return cmd
}

func runLoopWith(cmd *cobra.Command, ctx *commandContext, opts daemonrun.Options) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	return daemonrun.Run(cmd.Context(), cfg, opts)
}
