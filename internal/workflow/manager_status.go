package workflow

import (
	"encodewatch/internal/job"
	"encodewatch/internal/logging"
)

// StatusSummary represents lightweight loop diagnostics.
type StatusSummary struct {
	State     State
	LastError string
	LastJob   *job.Job
	Completed int
}

// Status returns the latest loop information.
func (m *Manager) Status() StatusSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summary := StatusSummary{State: m.state, LastJob: m.lastJob, Completed: m.completed}
	if m.lastErr != nil {
		summary.LastError = m.lastErr.Error()
	}
	return summary
}

func (m *Manager) setState(state State) {
	m.mu.Lock()
	previous := m.state
	m.state = state
	m.mu.Unlock()
	if previous != state && state == StateIdle {
		m.logger.Info("no pending jobs; idle",
			logging.Duration("check_interval", m.pollInterval),
			logging.String(logging.FieldState, string(state)),
		)
	}
}

func (m *Manager) setLastError(err error) {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}

func (m *Manager) setLastJob(j *job.Job) {
	m.mu.Lock()
	m.lastJob = j
	m.mu.Unlock()
}

func (m *Manager) recordCompleted() {
	m.mu.Lock()
	m.completed++
	m.mu.Unlock()
}
