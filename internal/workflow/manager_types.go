package workflow

import (
	"context"

	"encodewatch/internal/job"
)

// JobSource discovers the next job. A nil job with a nil error means none is
// available.
type JobSource interface {
	Scan(ctx context.Context) (*job.Job, error)
}

// JobRunner executes a single job to completion.
type JobRunner interface {
	Run(ctx context.Context, j *job.Job) error
}

// State is the loop state reported by Status.
type State string

const (
	StateIdle   State = "idle"
	StateActive State = "active"
)
