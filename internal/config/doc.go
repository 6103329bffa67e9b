// Package config loads, normalizes, and validates encodewatch configuration.
//
// Values start from repository defaults, are overlaid by an optional TOML file
// and then by command-line overrides, and are finally normalized (tilde and
// relative paths expanded to absolute ones) and validated. The resulting
// Config is built once at startup and passed explicitly to the scanner,
// executor, and loop; nothing re-reads flags or files later.
package config
