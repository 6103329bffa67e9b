// Package job defines the unit of work encodewatch processes and the closed
// set of failure kinds the scanner and executor report.
//
// A Job pairs one input video with the preset file that sits next to it. It is
// built by the scanner, consumed once by the executor, and then discarded; the
// filesystem remains the only record of pending work.
//
// Errors returned by the scanner and the executor are *Error values carrying a
// Kind plus the offending path and, for process failures, the exit code. Use
// KindOf to branch on the kind instead of matching message text.
package job
