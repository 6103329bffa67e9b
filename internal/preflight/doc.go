// Package preflight provides readiness checks for the filesystem paths and
// binaries encodewatch depends on.
//
// These checks run in two contexts:
//   - The runtime calls RunAll once at startup and logs every failure as a
//     warning. The loop still starts; a real problem surfaces as a fatal job
//     error on the first scan or encode.
//   - The CLI "encodewatch check" command renders the same results as a table.
package preflight
