// Package logging assembles the structured slog loggers used across
// encodewatch.
//
// It owns the console and JSON handlers, fans output out to stdout and the
// per-run log file, and exposes attribute helpers plus the standard field keys
// (component, event_type, error_hint, impact, correlation_id) so scanner,
// executor, and loop log lines share one shape. Old run logs are pruned by
// CleanupOldLogs. NewNop provides a discarding logger for tests.
package logging
