// Package main provides the entry point for the rsgen command line tool.
// It runs a cobra command that generates random character strings from a
// selectable character set, drawing from a cryptographically secure random
// source by default or from a fast xorshift128+ source on request. Defaults
// for length, repeat count and character set come from an optional TOML
// config file and RSGEN_* environment variables.
package main
