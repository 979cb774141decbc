// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container of the upload
// form. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Upload holds the admission limits of the file stager.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Log holds the destination and verbosity of the application log.
	Log Log `envPrefix:"LOG_"`

	// UI holds terminal presentation switches.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Upload holds the file admission policy.
type Upload struct {
	// MaxFileSize is the inclusive byte ceiling for a single staged file.
	// Env: UPLOAD_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// AllowedTypes lists the accepted media types, comma separated in the
	// environment (e.g. "image/png,image/jpeg").
	// Env: UPLOAD_ALLOWED_TYPES
	AllowedTypes []string `env:"ALLOWED_TYPES" envSeparator:","`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the log file. The terminal UI owns stdout, so logs
	// always go to a file.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// UI holds terminal presentation switches.
type UI struct {
	// AltScreen runs the form in the terminal's alternate screen buffer.
	// Env: UI_ALT_SCREEN
	AltScreen bool `env:"ALT_SCREEN"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, usually os.Args[1:])
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
