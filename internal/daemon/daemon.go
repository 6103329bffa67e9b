package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"encodewatch/internal/config"
	"encodewatch/internal/logging"
)

// LockFileName is the instance lock created inside the log directory.
const LockFileName = "encodewatch.lock"

// ErrAlreadyRunning reports that another process holds the instance lock.
var ErrAlreadyRunning = errors.New("another encodewatch instance is already running")

// Runner is the loop the daemon guards.
type Runner interface {
	Run(ctx context.Context) error
}

// Daemon enforces single-instance execution around a Runner.
type Daemon struct {
	logger   *slog.Logger
	runner   Runner
	lockPath string
	lock     *flock.Flock
	running  atomic.Bool
}

// New constructs a daemon whose lock lives in cfg.Paths.LogDir.
func New(cfg *config.Config, logger *slog.Logger, runner Runner) (*Daemon, error) {
	if cfg == nil || runner == nil {
		return nil, errors.New("daemon requires config and runner")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	lockPath := filepath.Join(cfg.Paths.LogDir, LockFileName)
	return &Daemon{
		logger:   logging.NewComponentLogger(logger, "daemon"),
		runner:   runner,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// LockPath returns the instance lock location.
func (d *Daemon) LockPath() string { return d.lockPath }

// Running reports whether Run currently holds the lock.
func (d *Daemon) Running() bool { return d.running.Load() }

// Run acquires the instance lock, runs the loop until it returns, and
// releases the lock. It returns ErrAlreadyRunning without running the loop
// when another instance holds the lock.
func (d *Daemon) Run(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}
	if err := os.MkdirAll(filepath.Dir(d.lockPath), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	d.running.Store(true)
	d.logger.Info("encodewatch started", logging.String("lock", d.lockPath))

	defer func() {
		if err := d.lock.Unlock(); err != nil {
			d.logger.Warn("failed to release instance lock", logging.Error(err))
		}
		d.running.Store(false)
		d.logger.Info("encodewatch stopped")
	}()

	return d.runner.Run(ctx)
}
