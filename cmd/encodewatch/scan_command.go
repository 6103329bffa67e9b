package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"encodewatch/internal/encoding"
	"encodewatch/internal/fileutil"
	"encodewatch/internal/logging"
	"encodewatch/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Show the job the next loop iteration would pick, without encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewNop()
			if cfg.Logging.Level == "debug" {
				if logger, err = logging.NewFromConfig(cfg); err != nil {
					return err
				}
			}

			found, err := scanner.NewFromConfig(cfg, logger).Scan(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if found == nil {
				fmt.Fprintf(out, "No job found under %s\n", cfg.Paths.InputDirs)
				return nil
			}

			output := encoding.NewExecutor(cfg, logger).OutputPath(found)
			size := "unknown size"
			if info, err := os.Stat(found.Input()); err == nil {
				size = humanize.Bytes(uint64(info.Size()))
			}
			fmt.Fprintf(out, "Input:  %s (%s)\n", found.Input(), size)
			fmt.Fprintf(out, "Preset: %s\n", found.Preset())
			fmt.Fprintf(out, "Output: %s\n", output)
			taken, err := fileutil.Exists(output)
			switch {
			case err != nil:
				fmt.Fprintf(out, "Warning: output path cannot be inspected (%v); encoding this job would fail\n", err)
			case taken:
				fmt.Fprintln(out, "Warning: output already exists; encoding this job would fail")
			}
			return nil
		},
	}
}
