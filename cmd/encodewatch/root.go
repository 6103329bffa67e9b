package main

import (
	"github.com/spf13/cobra"

	"encodewatch/internal/daemonrun"
)

type rootFlags struct {
	config               string
	inputDirs            string
	outputDir            string
	transcoderCommand    string
	checkIntervalSeconds int
	logLevel             string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "encodewatch",
		Short:         "Watch job folders and encode them with HandBrakeCLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(cmd, flags); err != nil {
				return err
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoopWith(cmd, ctx, daemonrun.Options{})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "Configuration file path")
	pf.StringVarP(&flags.inputDirs, "input-dirs-path", "i", "", "Root directory holding job folders")
	pf.StringVarP(&flags.outputDir, "output-dir-path", "o", "", "Directory encoded files are written to")
	pf.StringVar(&flags.transcoderCommand, "hand-brake-cli-cmd", "", "Transcoder command (default HandBrakeCLI)")
	pf.IntVarP(&flags.checkIntervalSeconds, "check-interval-seconds", "c", 0, "Seconds to sleep when no job is found (default 300)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
