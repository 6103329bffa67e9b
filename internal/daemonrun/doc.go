// Package daemonrun wires the encodewatch process runtime: signal handling,
// per-run log files, startup diagnostics, the instance lock, and the loop.
package daemonrun
