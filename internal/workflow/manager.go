package workflow

import (
	"log/slog"
	"sync"
	"time"

	"encodewatch/internal/config"
	"encodewatch/internal/job"
	"encodewatch/internal/logging"
)

// Manager coordinates the scan and encode loop.
type Manager struct {
	source       JobSource
	runner       JobRunner
	logger       *slog.Logger
	pollInterval time.Duration

	mu        sync.RWMutex
	state     State
	lastErr   error
	lastJob   *job.Job
	completed int
}

// NewManager constructs a manager polling at cfg's check interval.
func NewManager(cfg *config.Config, source JobSource, runner JobRunner, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		source:       source,
		runner:       runner,
		logger:       logging.NewComponentLogger(logger, "workflow"),
		pollInterval: cfg.CheckInterval(),
		state:        StateIdle,
	}
}

// PollInterval returns the idle sleep between empty scans.
func (m *Manager) PollInterval() time.Duration { return m.pollInterval }
