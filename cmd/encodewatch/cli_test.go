package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"encodewatch/internal/config"
	"encodewatch/internal/job"
	"encodewatch/internal/testsupport"
)

type cliEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLIEnv(t *testing.T, opts ...testsupport.ConfigOption) cliEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t, opts...)
	return cliEnv{cfg: cfg, configPath: filepath.Join(t.TempDir(), "absent.toml")}
}

func (e cliEnv) args(extra ...string) []string {
	base := []string{
		"--config", e.configPath,
		"-i", e.cfg.Paths.InputDirs,
		"-o", e.cfg.Paths.OutputDir,
		"--hand-brake-cli-cmd", e.cfg.Transcoder.Command,
		"-c", "1",
	}
	return append(extra, base...)
}

func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScanReportsNoJob(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := executeCLI(t, env.args("scan")...)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "No job found") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestScanShowsPairedJobWithoutEncoding(t *testing.T) {
	env := setupCLIEnv(t, testsupport.WithTranscoderScript(testsupport.CopyInputScript()))
	dir := testsupport.WriteJobDir(t, env.cfg.Paths.InputDirs, "a", "movie.mkv", job.PresetFileName)

	out, err := executeCLI(t, env.args("scan")...)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	for _, want := range []string{
		filepath.Join(dir, "movie.mkv"),
		filepath.Join(dir, job.PresetFileName),
		filepath.Join(env.cfg.Paths.OutputDir, "movie.mkv"),
		"16 B",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	testsupport.AssertExists(t, filepath.Join(dir, "movie.mkv"))
	if args := testsupport.RecordedArgs(t, env.cfg.Transcoder.Command); args != nil {
		t.Fatalf("scan must not invoke the transcoder, got %q", args)
	}
}

func TestScanWarnsAboutExistingOutput(t *testing.T) {
	env := setupCLIEnv(t)
	testsupport.WriteJobDir(t, env.cfg.Paths.InputDirs, "a", "movie.mkv", job.PresetFileName)
	testsupport.WriteFile(t, filepath.Join(env.cfg.Paths.OutputDir, "movie.mkv"), 1)

	out, err := executeCLI(t, env.args("scan")...)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "output already exists") {
		t.Fatalf("expected collision warning, got %q", out)
	}
}

func TestScanWarnsWhenOutputCannotBeInspected(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	env := setupCLIEnv(t)
	testsupport.WriteJobDir(t, env.cfg.Paths.InputDirs, "a", "movie.mkv", job.PresetFileName)
	if err := os.Chmod(env.cfg.Paths.OutputDir, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(env.cfg.Paths.OutputDir, 0o755) })

	out, err := executeCLI(t, env.args("scan")...)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "cannot be inspected") {
		t.Fatalf("expected inspection warning, got %q", out)
	}
}

func TestScanMissingRootIsJobError(t *testing.T) {
	env := setupCLIEnv(t)
	if err := os.RemoveAll(env.cfg.Paths.InputDirs); err != nil {
		t.Fatal(err)
	}

	_, err := executeCLI(t, env.args("scan")...)
	if !job.IsKind(err, job.ScanIOError) {
		t.Fatalf("expected scan error, got %v", err)
	}
	if exitCode(err) != exitDataErr {
		t.Fatalf("expected exit code %d, got %d", exitDataErr, exitCode(err))
	}
}

func TestRunOnceEncodesJob(t *testing.T) {
	env := setupCLIEnv(t, testsupport.WithTranscoderScript(testsupport.CopyInputScript()))
	dir := testsupport.WriteJobDir(t, env.cfg.Paths.InputDirs, "a", "movie.mkv", job.PresetFileName)

	if _, err := executeCLI(t, env.args("run", "--once")...); err != nil {
		t.Fatalf("run --once: %v", err)
	}
	testsupport.AssertExists(t, filepath.Join(env.cfg.Paths.OutputDir, "movie.mkv"))
	testsupport.AssertMissing(t, filepath.Join(dir, "movie.mkv"))
}

func TestRunOnceFailureExitsWithDataErr(t *testing.T) {
	env := setupCLIEnv(t, testsupport.WithTranscoderScript(testsupport.ExitScript(1)))
	testsupport.WriteJobDir(t, env.cfg.Paths.InputDirs, "a", "movie.mkv", job.PresetFileName)

	_, err := executeCLI(t, env.args("run", "--once")...)
	if !job.IsKind(err, job.NonZeroExit) {
		t.Fatalf("expected non-zero exit error, got %v", err)
	}
	if exitCode(err) != exitDataErr {
		t.Fatalf("expected exit code %d, got %d", exitDataErr, exitCode(err))
	}
}

func TestMissingInputFlagIsUsageError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "absent.toml")

	_, err := executeCLI(t, "scan", "--config", configPath, "-o", t.TempDir())
	if err == nil {
		t.Fatal("expected missing input directory to fail")
	}
	if exitCode(err) != 1 {
		t.Fatalf("expected exit code 1 for config errors, got %d", exitCode(err))
	}
}

func TestNonPositiveIntervalFlagRejected(t *testing.T) {
	env := setupCLIEnv(t)

	_, err := executeCLI(t, append(env.args("scan"), "-c", "0")...)
	if err == nil || !strings.Contains(err.Error(), "check-interval-seconds") {
		t.Fatalf("expected interval error, got %v", err)
	}
}

func TestCheckRendersReadinessTable(t *testing.T) {
	env := setupCLIEnv(t)

	out, err := executeCLI(t, env.args("check")...)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	for _, want := range []string{"Input directory", "Output directory", "HandBrakeCLI", "Ready", "Config: defaults"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCheckFailsWhenTranscoderMissing(t *testing.T) {
	env := setupCLIEnv(t, testsupport.WithTranscoderCommand(filepath.Join(t.TempDir(), "HandBrakeCLI")))

	out, err := executeCLI(t, env.args("check")...)
	if err == nil {
		t.Fatal("expected check to fail")
	}
	if !strings.Contains(out, "Not Ready") {
		t.Fatalf("expected failing row, got:\n%s", out)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := executeCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output, got %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "input_dirs") {
		t.Fatalf("unexpected sample contents:\n%s", data)
	}

	if _, err := executeCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	if _, err := executeCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowUsesFileAndFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	contents := "[paths]\ninput_dirs = \"" + filepath.Join(base, "jobs") + "\"\noutput_dir = \"" + filepath.Join(base, "out") + "\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	override := filepath.Join(base, "elsewhere")

	out, err := executeCLI(t, "config", "show", "--config", configPath, "-o", override)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"# source: " + configPath, filepath.Join(base, "jobs"), override} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain", err: errors.New("boom"), want: 1},
		{name: "job", err: &job.Error{Kind: job.OutputMissing, Path: "/out/a.mkv"}, want: exitDataErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Fatalf("unexpected exit code: got %d want %d", got, tt.want)
			}
		})
	}
}
