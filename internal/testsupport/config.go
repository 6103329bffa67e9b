package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"encodewatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The input root and output directory exist; the transcoder defaults to a stub
// that exits 0 without writing anything.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.InputDirs = filepath.Join(base, "jobs")
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Workflow.CheckIntervalSeconds = 1
	for _, dir := range []string{cfgVal.Paths.InputDirs, cfgVal.Paths.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	cfgVal.Transcoder.Command = WriteStubBinary(t, filepath.Join(base, "bin"), "HandBrakeCLI", ExitScript(0))

	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithTranscoderScript replaces the stub transcoder body.
func WithTranscoderScript(script string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Transcoder.Command = WriteStubBinary(b.t, filepath.Join(b.baseDir, "bin"), "HandBrakeCLI", script)
	}
}

// WithTranscoderCommand points the config at an arbitrary command.
func WithTranscoderCommand(command string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Transcoder.Command = command
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends their directory to PATH.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"HandBrakeCLI"}
		}
		binDir := filepath.Join(b.baseDir, "path-bin")
		for _, name := range names {
			WriteStubBinary(b.t, binDir, name, ExitScript(0))
		}
		current := os.Getenv("PATH")
		if current == "" {
			b.t.Setenv("PATH", binDir)
		} else {
			b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+current)
		}
	}
}
