// Package scanner discovers the next encode job under the input root.
//
// The input root holds one subdirectory per job. A scan lists the root, then
// the immediate children of each subdirectory, and pairs the first .mkv file
// with the directory's preset.json. The first complete pair ends the scan:
// Scan returns at most one job per call and the workflow loop calls it again
// after each encode. Nothing is remembered between scans; a half-filled
// directory is simply re-inspected next time.
package scanner
