// Package testsupport holds helpers shared by package tests: temp-dir configs,
// job directory fixtures, and shell-script stand-ins for the transcoder.
package testsupport
