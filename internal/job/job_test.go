package job_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"encodewatch/internal/job"
)

func TestNewRequiresRegularFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "movie.mkv")
	preset := filepath.Join(dir, job.PresetFileName)
	if err := os.WriteFile(input, []byte("video"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if _, err := job.New(input, preset); !job.IsKind(err, job.ScanIOError) {
		t.Fatalf("expected scan error for missing preset, got %v", err)
	}

	if err := os.Mkdir(preset, 0o755); err != nil {
		t.Fatalf("mkdir preset: %v", err)
	}
	if _, err := job.New(input, preset); !job.IsKind(err, job.ScanIOError) {
		t.Fatalf("expected scan error for directory preset, got %v", err)
	}
}

func TestNewBuildsJob(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "movie.mkv")
	preset := filepath.Join(dir, job.PresetFileName)
	for _, path := range []string{input, preset} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	j, err := job.New(input, preset)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if j.Input() != input || j.Preset() != preset {
		t.Fatalf("unexpected job paths: %s", j)
	}
	if j.ID() == "" {
		t.Fatal("expected correlation id")
	}
	other, err := job.New(input, preset)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if other.ID() == j.ID() {
		t.Fatal("expected distinct correlation ids per job")
	}
}

func TestErrorMessagesNameContext(t *testing.T) {
	cases := []struct {
		err  *job.Error
		want []string
	}{
		{&job.Error{Kind: job.ScanIOError, Path: "/jobs", Err: fs.ErrPermission}, []string{"/jobs", "permission denied"}},
		{&job.Error{Kind: job.DestinationExists, Path: "/out/movie.mkv"}, []string{"/out/movie.mkv", "already exists"}},
		{&job.Error{Kind: job.SpawnFailed, Path: "HandBrakeCLI", Err: errors.New("executable file not found")}, []string{"HandBrakeCLI", "not found"}},
		{&job.Error{Kind: job.NonZeroExit, Path: "/jobs/a/movie.mkv", Code: 3}, []string{"/jobs/a/movie.mkv", "exit code 3"}},
		{&job.Error{Kind: job.TerminatedNoCode, Path: "/jobs/a/movie.mkv"}, []string{"without exit code"}},
		{&job.Error{Kind: job.OutputMissing, Path: "/out/movie.mkv"}, []string{"/out/movie.mkv", "did not produce"}},
		{&job.Error{Kind: job.DeleteFailed, Path: "/jobs/a/movie.mkv", Err: fs.ErrPermission}, []string{"remove input", "/jobs/a/movie.mkv"}},
	}
	for _, tc := range cases {
		msg := tc.err.Error()
		for _, want := range tc.want {
			if !strings.Contains(msg, want) {
				t.Fatalf("%s: expected %q in message %q", tc.err.Kind, want, msg)
			}
		}
	}
}

func TestKindOfUnwrapsChains(t *testing.T) {
	base := &job.Error{Kind: job.NonZeroExit, Path: "/in.mkv", Code: 1}
	wrapped := fmt.Errorf("run job: %w", base)

	kind, ok := job.KindOf(wrapped)
	if !ok || kind != job.NonZeroExit {
		t.Fatalf("unexpected kind: %v %v", kind, ok)
	}
	if base.ErrorKind() != "non_zero_exit" {
		t.Fatalf("unexpected error kind label: %q", base.ErrorKind())
	}
	if _, ok := job.KindOf(errors.New("plain")); ok {
		t.Fatal("expected no kind for plain error")
	}

	cause := &job.Error{Kind: job.DeleteFailed, Path: "/in.mkv", Err: fs.ErrPermission}
	if !errors.Is(cause, fs.ErrPermission) {
		t.Fatal("expected Unwrap to expose the cause")
	}
}
