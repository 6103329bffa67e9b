// Package encoding runs one job through the external transcoder.
//
// The Executor derives the output path from the input's base name, refuses
// to start when that path is taken, invokes the transcoder synchronously with
// its stdout streamed to ours, and only trusts the result when the process
// exited 0 and the output file exists. The input is deleted after a verified
// encode; the preset is never touched.
package encoding
