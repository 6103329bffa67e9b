package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTranscoder(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.InputDirs, err = expandPath(strings.TrimSpace(c.Paths.InputDirs)); err != nil {
		return fmt.Errorf("paths.input_dirs: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

// normalizeTranscoder leaves bare command names for PATH lookup and expands
// anything that looks like a filesystem path.
func (c *Config) normalizeTranscoder() error {
	command := strings.TrimSpace(c.Transcoder.Command)
	if command == "" {
		command = defaultTranscoderCommand
	}
	if strings.HasPrefix(command, "~") || strings.ContainsAny(command, `/\`) {
		expanded, err := expandPath(command)
		if err != nil {
			return fmt.Errorf("transcoder.command: %w", err)
		}
		command = expanded
	}
	c.Transcoder.Command = command
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
