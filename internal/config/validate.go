package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Transcoder.Command) == "" {
		return errors.New("transcoder.command must be set")
	}
	if c.Workflow.CheckIntervalSeconds <= 0 {
		return errors.New("workflow.check_interval_seconds must be positive")
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.InputDirs == "" {
		return fmt.Errorf("paths.input_dirs is required. Pass --input-dirs-path or edit %s (create with 'encodewatch config init')", displayConfigPath())
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("paths.output_dir is required. Pass --output-dir-path or edit %s (create with 'encodewatch config init')", displayConfigPath())
	}
	if filepath.Clean(c.Paths.InputDirs) == filepath.Clean(c.Paths.OutputDir) {
		return errors.New("paths.output_dir must differ from paths.input_dirs")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func displayConfigPath() string {
	path, err := DefaultConfigPath()
	if err != nil {
		return "~/.config/encodewatch/config.toml"
	}
	return path
}
