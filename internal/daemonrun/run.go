package daemonrun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"encodewatch/internal/config"
	"encodewatch/internal/daemon"
	"encodewatch/internal/deps"
	"encodewatch/internal/encoding"
	"encodewatch/internal/logging"
	"encodewatch/internal/preflight"
	"encodewatch/internal/scanner"
	"encodewatch/internal/workflow"
)

// CurrentLogName is the pointer to the newest per-run log file.
const CurrentLogName = "encodewatch.log"

// Options configures process runtime behavior.
type Options struct {
	Development bool
	// Once runs a single scan and encode iteration instead of the loop.
	Once bool
}

// Run starts the encodewatch runtime and blocks until the loop ends. A loop
// ended by SIGINT or SIGTERM returns nil.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runID := time.Now().UTC().Format("20060102T150405.000Z")
	logPath := filepath.Join(cfg.Paths.LogDir, fmt.Sprintf("encodewatch-%s.log", runID))
	logger, closeLogs, err := logging.Open(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stdout", logPath},
		Development: opts.Development,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if err := closeLogs(); err != nil {
			fmt.Fprintf(os.Stderr, "warn: unable to close run log: %v\n", err)
		}
	}()

	if err := ensureCurrentLogPointer(cfg.Paths.LogDir, logPath); err != nil {
		fmt.Fprintf(os.Stderr, "warn: unable to update %s link: %v\n", CurrentLogName, err)
	}
	logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays,
		logging.RetentionTarget{Dir: cfg.Paths.LogDir, Pattern: "encodewatch-*.log", Exclude: []string{logPath}},
	)
	logger.Info("encodewatch starting",
		logging.String(logging.FieldEventType, "startup"),
		logging.String("input_dirs", cfg.Paths.InputDirs),
		logging.String("output_dir", cfg.Paths.OutputDir),
		logging.String("log_path", logPath),
		logging.Bool("once", opts.Once),
	)
	logDependencySnapshot(logger, cfg)
	logPreflight(logger, cfg)

	manager := workflow.NewManager(cfg,
		scanner.NewFromConfig(cfg, logger),
		encoding.NewExecutor(cfg, logger),
		logger,
	)

	var runner daemon.Runner = manager
	if opts.Once {
		runner = onceRunner{manager: manager}
	}
	d, err := daemon.New(cfg, logger, runner)
	if err != nil {
		return fmt.Errorf("create daemon: %w", err)
	}
	return d.Run(signalCtx)
}

type onceRunner struct {
	manager *workflow.Manager
}

func (r onceRunner) Run(ctx context.Context) error {
	_, err := r.manager.RunOnce(ctx)
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func ensureCurrentLogPointer(logDir, target string) error {
	if logDir == "" || target == "" {
		return nil
	}
	current := filepath.Join(logDir, CurrentLogName)
	if err := os.Remove(current); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing log pointer: %w", err)
	}
	if err := os.Symlink(target, current); err == nil {
		return nil
	}
	if err := os.Link(target, current); err != nil {
		return fmt.Errorf("link log pointer: %w", err)
	}
	return nil
}

func logDependencySnapshot(logger *slog.Logger, cfg *config.Config) {
	statuses := deps.CheckSystem(cfg)
	attrs := []logging.Attr{logging.String(logging.FieldEventType, "dependency_snapshot")}
	for _, status := range statuses {
		key := strings.ToLower(status.Name)
		attrs = append(attrs,
			logging.Bool(key+"_available", status.Available),
			logging.String(key+"_binary", status.Command),
		)
	}
	attrs = append(attrs, logging.Int("missing_required", len(deps.MissingRequired(statuses))))
	logger.Info("dependency snapshot", logging.Args(attrs...)...)
}

func logPreflight(logger *slog.Logger, cfg *config.Config) {
	for _, result := range preflight.Failed(preflight.RunAll(cfg)) {
		logging.WarnWithContext(logger, "preflight check failed", "preflight_failed",
			logging.String("check", result.Name),
			logging.String("detail", result.Detail),
			logging.String(logging.FieldImpact, "the loop may stop on its first scan or encode"),
			logging.String(logging.FieldErrorHint, "run encodewatch check for details"),
		)
	}
}
