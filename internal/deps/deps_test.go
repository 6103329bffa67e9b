package deps

import (
	"path/filepath"
	"testing"

	"encodewatch/internal/testsupport"
)

func TestCheckBinaries(t *testing.T) {
	present := testsupport.WriteStubBinary(t, t.TempDir(), "present", testsupport.ExitScript(0))
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  ", Optional: true},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Path != present {
		t.Fatalf("unexpected resolved path: got %q want %q", results[0].Path, present)
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for blank command: %#v", results[2])
	}

	missing := MissingRequired(results)
	if len(missing) != 1 || missing[0].Name != "Missing" {
		t.Fatalf("expected only the required missing binary, got %#v", missing)
	}
}

func TestCheckSystemResolvesTranscoderFromPath(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithStubbedBinaries("HandBrakeCLI"),
		testsupport.WithTranscoderCommand("HandBrakeCLI"),
	)

	statuses := CheckSystem(cfg)
	if len(statuses) != 1 {
		t.Fatalf("expected one requirement, got %d", len(statuses))
	}
	status := statuses[0]
	if !status.Available {
		t.Fatalf("expected stubbed transcoder on PATH, got detail %q", status.Detail)
	}
	if filepath.Base(status.Path) != "HandBrakeCLI" {
		t.Fatalf("unexpected resolved path: %q", status.Path)
	}
}

func TestCheckSystemReportsMissingTranscoder(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithTranscoderCommand(filepath.Join(t.TempDir(), "HandBrakeCLI")))

	statuses := CheckSystem(cfg)
	if len(MissingRequired(statuses)) != 1 {
		t.Fatalf("expected missing transcoder, got %#v", statuses)
	}
}
