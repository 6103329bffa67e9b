package preflight

import (
	"encodewatch/internal/config"
	"encodewatch/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every readiness check for the given config: the input
// root must be listable, the output directory writable, and the transcoder
// resolvable.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Input directory", cfg.Paths.InputDirs, ReadAccess),
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir, ReadWriteAccess),
	}
	for _, status := range deps.CheckSystem(cfg) {
		results = append(results, CheckDependency(status))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
