package scanner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"encodewatch/internal/config"
	"encodewatch/internal/job"
	"encodewatch/internal/logging"
)

// DirReader lists a directory. os.ReadDir satisfies it.
type DirReader func(name string) ([]os.DirEntry, error)

// Scanner finds (input, preset) pairs one level below a root directory.
type Scanner struct {
	root    string
	readDir DirReader
	logger  *slog.Logger
}

// Option customizes a Scanner.
type Option func(*Scanner)

// WithDirReader replaces os.ReadDir, letting tests control listing order.
func WithDirReader(reader DirReader) Option {
	return func(s *Scanner) {
		if reader != nil {
			s.readDir = reader
		}
	}
}

// New constructs a scanner over root.
func New(root string, logger *slog.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		root:    root,
		readDir: os.ReadDir,
		logger:  logging.NewComponentLogger(logger, "scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig constructs a scanner over the configured input root.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, opts ...Option) *Scanner {
	return New(cfg.Paths.InputDirs, logger, opts...)
}

type role int

const (
	roleOther role = iota
	roleInput
	rolePreset
)

func classify(name string) role {
	if name == job.PresetFileName {
		return rolePreset
	}
	ext := filepath.Ext(name)
	if ext == "."+job.InputExtension && strings.TrimSuffix(name, ext) != "" {
		return roleInput
	}
	return roleOther
}

// Scan returns the first complete job under the root, or nil when no
// subdirectory currently holds both an input and a preset. Listing failures
// and undecodable file names are returned as job.ScanIOError.
func (s *Scanner) Scan(ctx context.Context) (*job.Job, error) {
	s.logger.Debug("scanning input root", logging.String("root", s.root))

	entries, err := s.readDir(s.root)
	if err != nil {
		return nil, &job.Error{Kind: job.ScanIOError, Path: s.root, Err: err}
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(s.root, entry.Name())
		if !isDir(path) {
			s.logger.Debug("skipping non-directory entry", logging.String("path", displayName(path)))
			continue
		}

		found, err := s.scanDir(path)
		if err != nil {
			return nil, err
		}
		if found != nil {
			s.logger.Info("job found",
				logging.String(logging.FieldEventType, "job_found"),
				logging.String(logging.FieldCorrelationID, found.ID()),
				logging.String("input", found.Input()),
				logging.String("preset", found.Preset()),
			)
			return found, nil
		}
	}

	s.logger.Debug("no files for encoding found", logging.String("root", s.root))
	return nil, nil
}

// scanDir inspects the immediate children of one job directory. The slots
// live only for the duration of this call.
func (s *Scanner) scanDir(dir string) (*job.Job, error) {
	entries, err := s.readDir(dir)
	if err != nil {
		return nil, &job.Error{Kind: job.ScanIOError, Path: dir, Err: err}
	}

	var foundInput, foundPreset string
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		if !utf8.ValidString(name) {
			return nil, &job.Error{Kind: job.ScanIOError, Path: displayName(path), Err: errors.New("file name is not valid UTF-8")}
		}
		if !isRegular(path) {
			s.logger.Debug("skipping non-file entry", logging.String("path", path))
			continue
		}

		switch classify(name) {
		case rolePreset:
			foundPreset = path
		case roleInput:
			if foundInput == "" {
				foundInput = path
			} else {
				s.logger.Debug("additional input left for a later scan", logging.String("path", path))
				continue
			}
		default:
			s.logger.Debug("ignoring unknown file", logging.String("path", path))
			continue
		}

		if foundInput != "" && foundPreset != "" {
			return job.New(foundInput, foundPreset)
		}
	}

	if foundInput != "" || foundPreset != "" {
		s.logger.Debug("directory incomplete",
			logging.String("dir", dir),
			logging.Bool("has_input", foundInput != ""),
			logging.Bool("has_preset", foundPreset != ""),
		)
	}
	return nil, nil
}

// isDir and isRegular follow symlinks; an entry that cannot be stat'ed counts
// as neither.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func displayName(path string) string {
	if utf8.ValidString(path) {
		return path
	}
	return strings.ToValidUTF8(path, "�")
}
