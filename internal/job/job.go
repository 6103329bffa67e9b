package job

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// PresetFileName is the file name that marks a directory's preset.
const PresetFileName = "preset.json"

// InputExtension is the extension (without dot) of input videos.
const InputExtension = "mkv"

// Job is an immutable (input, preset) pair discovered by a scan.
type Job struct {
	input  string
	preset string
	id     string
}

// New validates that both paths reference existing regular files and returns
// the job.
func New(input, preset string) (*Job, error) {
	for _, path := range []string{input, preset} {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &Error{Kind: ScanIOError, Path: path, Err: err}
		}
		if !info.Mode().IsRegular() {
			return nil, &Error{Kind: ScanIOError, Path: path, Err: fmt.Errorf("not a regular file")}
		}
	}
	return &Job{input: input, preset: preset, id: uuid.NewString()}, nil
}

// Input returns the path of the media file to transcode.
func (j *Job) Input() string { return j.input }

// Preset returns the path of the preset file to apply.
func (j *Job) Preset() string { return j.preset }

// ID returns the correlation identifier used to tie together log lines for
// this job. It is not persisted anywhere.
func (j *Job) ID() string { return j.id }

func (j *Job) String() string {
	return fmt.Sprintf("%s (preset %s)", j.input, j.preset)
}

// State is the lifecycle position of one job inside the executor.
type State string

const (
	StatePending   State = "pending"
	StateEncoding  State = "encoding"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)
