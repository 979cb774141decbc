// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-upload-form/internal/staging"
)

const (
	defaultLogFileName = "upload-form.log"
	defaultLogLevel    = "info"
)

// defaultConfig returns the built-in values every other source overrides.
func defaultConfig() *StructuredConfig {
	policy := staging.DefaultPolicy()
	return &StructuredConfig{
		Upload: Upload{
			MaxFileSize:  policy.MaxSize,
			AllowedTypes: policy.AllowedTypes,
		},
		Log: Log{
			File:  defaultLogPath(),
			Level: defaultLogLevel,
		},
	}
}

// defaultLogPath places the log file near the executable, falling back to
// the working directory.
func defaultLogPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return defaultLogFileName
	}
	return filepath.Join(filepath.Dir(execPath), defaultLogFileName)
}

// Policy returns the stager policy described by the Upload section.
func (cfg *StructuredConfig) Policy() staging.Policy {
	types := make([]string, len(cfg.Upload.AllowedTypes))
	copy(types, cfg.Upload.AllowedTypes)
	return staging.Policy{AllowedTypes: types, MaxSize: cfg.Upload.MaxFileSize}
}
