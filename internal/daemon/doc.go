// Package daemon owns the lifecycle of the long-running encodewatch loop.
//
// It wraps the workflow manager with a flock-based instance lock so two loop
// processes never race the same input tree, and releases the lock when the
// loop returns for any reason.
package daemon
