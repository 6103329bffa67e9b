package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"encodewatch/internal/config"
)

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config), c.overrides())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) overrides() config.Overrides {
	return config.Overrides{
		InputDirs:            c.flags.inputDirs,
		OutputDir:            c.flags.outputDir,
		TranscoderCommand:    c.flags.transcoderCommand,
		CheckIntervalSeconds: c.flags.checkIntervalSeconds,
		LogLevel:             c.flags.logLevel,
	}
}

// validateFlags rejects explicit values the zero-means-unset overrides
// cannot express.
func validateFlags(cmd *cobra.Command, flags *rootFlags) error {
	if f := cmd.Flags().Lookup("check-interval-seconds"); f != nil && f.Changed && flags.checkIntervalSeconds <= 0 {
		return fmt.Errorf("--check-interval-seconds must be positive, got %d", flags.checkIntervalSeconds)
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
