package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"encodewatch/internal/job"
)

// exitDataErr mirrors sysexits EX_DATAERR for job and scan failures.
const exitDataErr = 65

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var jobErr *job.Error
	if errors.As(err, &jobErr) {
		return exitDataErr
	}
	return 1
}
