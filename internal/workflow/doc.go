// Package workflow drives the scan and encode loop.
//
// The Manager alternates between two states. Active: a scan found a job, the
// executor runs it, and the next scan follows immediately. Idle: a scan found
// nothing and the manager sleeps for the configured check interval. Any scan
// or encode error ends the loop; no job is retried or skipped. Context
// cancellation interrupts only the idle wait.
package workflow
