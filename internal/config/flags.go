// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
)

// TypeList holds a comma separated list of media types.
// It implements the flag.Value interface.
type TypeList []string

// String returns the list joined with commas.
func (l *TypeList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set splits s on commas, trimming blanks and skipping empty entries.
// Repeated flags accumulate.
func (l *TypeList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-max-file-size  byte ceiling of a single file
//	-allowed-types  comma separated media type allow-list
//	-log-file       log file path
//	-log-level      zerolog level name
//	-alt-screen     run in the alternate screen buffer
//	-c/-config      json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("upload-form", flag.ContinueOnError)

	var maxFileSize int64
	var allowedTypes TypeList
	var logFile, logLevel string
	var altScreen bool
	var jsonConfigPath string

	fs.Int64Var(&maxFileSize, "max-file-size", 0, "Maximum size of a single file in bytes")
	fs.Var(&allowedTypes, "allowed-types", "Comma separated accepted media types")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&altScreen, "alt-screen", false, "Use the terminal alternate screen")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Upload: Upload{
			MaxFileSize:  maxFileSize,
			AllowedTypes: allowedTypes,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		UI: UI{
			AltScreen: altScreen,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
