package job

import (
	"errors"
	"fmt"
)

// Kind classifies a scan or execution failure.
type Kind int

const (
	// ScanIOError reports a directory that could not be listed or a file name
	// that is not valid text.
	ScanIOError Kind = iota + 1
	// DestinationExists reports an output path that is already taken before
	// the encode starts.
	DestinationExists
	// SpawnFailed reports a transcoder process that could not be started or
	// waited on.
	SpawnFailed
	// NonZeroExit reports a transcoder that exited with a failure code.
	NonZeroExit
	// TerminatedNoCode reports a transcoder that ended without an exit code,
	// usually because a signal killed it.
	TerminatedNoCode
	// OutputMissing reports a transcoder that exited successfully without
	// writing the output file.
	OutputMissing
	// DeleteFailed reports an input file that could not be removed after a
	// verified encode.
	DeleteFailed
)

func (k Kind) String() string {
	switch k {
	case ScanIOError:
		return "scan_io"
	case DestinationExists:
		return "destination_exists"
	case SpawnFailed:
		return "spawn_failed"
	case NonZeroExit:
		return "non_zero_exit"
	case TerminatedNoCode:
		return "terminated_no_code"
	case OutputMissing:
		return "output_missing"
	case DeleteFailed:
		return "delete_failed"
	default:
		return "unknown"
	}
}

// Error is the structured failure returned by the scanner and executor.
type Error struct {
	Kind Kind
	// Path is the file or directory the failure concerns. For SpawnFailed it
	// is the transcoder command.
	Path string
	// Code is the transcoder exit code; only meaningful for NonZeroExit.
	Code int
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ScanIOError:
		if e.Err != nil {
			return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("scan %s failed", e.Path)
	case DestinationExists:
		if e.Err != nil {
			return fmt.Sprintf("output path %s unavailable: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("output path %s already exists", e.Path)
	case SpawnFailed:
		if e.Err != nil {
			return fmt.Sprintf("run transcoder %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("run transcoder %s failed", e.Path)
	case NonZeroExit:
		return fmt.Sprintf("encoding %s failed with exit code %d", e.Path, e.Code)
	case TerminatedNoCode:
		return fmt.Sprintf("encoding %s terminated without exit code", e.Path)
	case OutputMissing:
		return fmt.Sprintf("encoding did not produce output file %s", e.Path)
	case DeleteFailed:
		if e.Err != nil {
			return fmt.Sprintf("remove input %s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("remove input %s failed", e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Path, e.Err)
		}
		return e.Path
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ErrorKind returns the snake_case name of the failure kind.
func (e *Error) ErrorKind() string { return e.Kind.String() }

// KindOf returns the kind of the first *Error in err's chain, or false when
// err carries none.
func KindOf(err error) (Kind, bool) {
	var jobErr *Error
	if errors.As(err, &jobErr) {
		return jobErr.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}
