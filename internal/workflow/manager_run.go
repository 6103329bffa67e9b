package workflow

import (
	"context"
	"errors"
	"time"

	"encodewatch/internal/logging"
)

// Run loops until a scan or encode fails or ctx is cancelled. Cancellation
// observed between iterations or during the idle wait returns nil.
func (m *Manager) Run(ctx context.Context) error {
	m.logger.Info("watching for jobs",
		logging.Duration("check_interval", m.pollInterval),
		logging.String(logging.FieldEventType, "loop_started"),
	)
	for {
		if ctx.Err() != nil {
			m.logShutdown()
			return nil
		}

		found, err := m.RunOnce(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				m.logShutdown()
				return nil
			}
			logging.ErrorWithContext(m.logger, "loop stopped on fatal error", "loop_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "no further jobs will be processed"),
				logging.String(logging.FieldErrorHint, "resolve the failure and restart encodewatch"),
			)
			return err
		}
		if found {
			continue
		}
		m.waitForJobOrShutdown(ctx)
	}
}

// RunOnce performs one scan and, when it finds a job, one encode. It never
// sleeps. The boolean reports whether a job was found.
func (m *Manager) RunOnce(ctx context.Context) (bool, error) {
	j, err := m.source.Scan(ctx)
	if err != nil {
		m.setLastError(err)
		return false, err
	}
	if j == nil {
		m.setState(StateIdle)
		return false, nil
	}

	m.setState(StateActive)
	m.setLastJob(j)
	m.logger.Debug("dispatching job", logging.String(logging.FieldCorrelationID, j.ID()))
	if err := m.runner.Run(ctx, j); err != nil {
		m.setLastError(err)
		return true, err
	}
	m.recordCompleted()
	return true, nil
}

func (m *Manager) waitForJobOrShutdown(ctx context.Context) {
	m.logger.Debug("no job found; sleeping", logging.Duration("check_interval", m.pollInterval))
	timer := time.NewTimer(m.pollInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (m *Manager) logShutdown() {
	status := m.Status()
	m.logger.Info("shutdown requested; loop stopped",
		logging.Int("jobs_completed", status.Completed),
		logging.String(logging.FieldEventType, "loop_stopped"),
	)
}
