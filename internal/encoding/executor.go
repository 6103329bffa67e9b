package encoding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"encodewatch/internal/config"
	"encodewatch/internal/fileutil"
	"encodewatch/internal/job"
	"encodewatch/internal/logging"
)

// Executor runs jobs through the configured transcoder command.
type Executor struct {
	outputDir string
	command   string
	stdout    io.Writer
	stderr    io.Writer
	logger    *slog.Logger
}

// Option customizes an Executor.
type Option func(*Executor)

// WithOutput redirects the transcoder's stdout and stderr. Defaults are the
// process's own streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		if stdout != nil {
			e.stdout = stdout
		}
		if stderr != nil {
			e.stderr = stderr
		}
	}
}

// NewExecutor constructs an executor writing into the configured output
// directory.
func NewExecutor(cfg *config.Config, logger *slog.Logger, opts ...Option) *Executor {
	e := &Executor{
		outputDir: cfg.Paths.OutputDir,
		command:   cfg.Transcoder.Command,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		logger:    logging.NewComponentLogger(logger, "encoder"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OutputPath returns the destination for j: the output directory joined with
// the input's base name.
func (e *Executor) OutputPath(j *job.Job) string {
	return filepath.Join(e.outputDir, filepath.Base(j.Input()))
}

// Args returns the transcoder arguments for encoding j into output.
func Args(j *job.Job, output string) []string {
	return []string{
		"--preset-import-file", j.Preset(),
		"-i", j.Input(),
		"-o", output,
	}
}

// Run encodes j and deletes its input on verified success. It blocks until
// the transcoder exits. ctx is only checked before the process starts, so a
// running encode is never interrupted.
func (e *Executor) Run(ctx context.Context, j *job.Job) error {
	output := e.OutputPath(j)
	logger := e.logger.With(
		logging.String(logging.FieldCorrelationID, j.ID()),
		logging.String("input", j.Input()),
		logging.String("output", output),
	)
	logState(logger, job.StatePending)

	if err := ctx.Err(); err != nil {
		return err
	}

	taken, err := fileutil.Exists(output)
	if err != nil {
		return e.fail(logger, &job.Error{Kind: job.DestinationExists, Path: output, Err: err})
	}
	if taken {
		return e.fail(logger, &job.Error{Kind: job.DestinationExists, Path: output})
	}

	cmd := exec.Command(e.command, Args(j, output)...)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return e.fail(logger, &job.Error{Kind: job.SpawnFailed, Path: e.command, Err: err})
	}
	logState(logger, job.StateEncoding, logging.String("preset", j.Preset()), logging.Int("pid", cmd.Process.Pid))

	if err := cmd.Wait(); err != nil {
		return e.fail(logger, classifyWaitError(e.command, j.Input(), err))
	}
	elapsed := time.Since(started)

	size, ok := fileutil.RegularFileSize(output)
	if !ok {
		return e.fail(logger, &job.Error{Kind: job.OutputMissing, Path: output})
	}

	if err := os.Remove(j.Input()); err != nil {
		return e.fail(logger, &job.Error{Kind: job.DeleteFailed, Path: j.Input(), Err: err})
	}

	logState(logger, job.StateSucceeded,
		logging.String(logging.FieldEventType, "encode_succeeded"),
		logging.Duration("elapsed", elapsed.Round(time.Second)),
		logging.String("output_size", humanize.Bytes(uint64(size))),
	)
	return nil
}

// classifyWaitError maps a failed Wait onto the exit-code kinds. A process
// that was killed by a signal reports ExitCode -1.
func classifyWaitError(command, input string, err error) *job.Error {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return &job.Error{Kind: job.SpawnFailed, Path: command, Err: fmt.Errorf("wait: %w", err)}
	}
	code := exitErr.ExitCode()
	if code < 0 {
		return &job.Error{Kind: job.TerminatedNoCode, Path: input, Err: err}
	}
	return &job.Error{Kind: job.NonZeroExit, Path: input, Code: code, Err: err}
}

func (e *Executor) fail(logger *slog.Logger, err *job.Error) error {
	attrs := []logging.Attr{
		logging.String(logging.FieldState, string(job.StateFailed)),
		logging.String(logging.FieldErrorKind, err.ErrorKind()),
		logging.Error(err),
	}
	switch err.Kind {
	case job.DestinationExists:
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "move or remove the existing output file"))
	case job.SpawnFailed:
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "check transcoder.command and that the binary is executable"))
	case job.NonZeroExit, job.TerminatedNoCode, job.OutputMissing:
		attrs = append(attrs, logging.String(logging.FieldErrorHint, "inspect the transcoder output above; the input file was kept"))
	case job.DeleteFailed:
		attrs = append(attrs,
			logging.String(logging.FieldErrorHint, "remove the input manually; the encoded output is complete"),
			logging.String(logging.FieldImpact, "the same job would be picked up again and collide with its own output"),
		)
	}
	logging.ErrorWithContext(logger, "encode failed", "encode_failed", attrs...)
	return err
}

func logState(logger *slog.Logger, state job.State, attrs ...logging.Attr) {
	attrs = append([]logging.Attr{logging.String(logging.FieldState, string(state))}, attrs...)
	level := slog.LevelDebug
	if state != job.StatePending {
		level = slog.LevelInfo
	}
	logger.Log(context.Background(), level, "job "+string(state), logging.Args(attrs...)...)
}
