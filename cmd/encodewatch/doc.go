// Command encodewatch polls an input directory for job folders holding one
// .mkv file and a preset.json, runs HandBrakeCLI on each pair, and deletes the
// source after a verified encode.
//
// Running the binary without a subcommand starts the loop. The scan, check,
// and config subcommands inspect the setup without encoding anything.
package main
