// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"mime"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can drive the
// form: a positive size ceiling, at least one well-formed media type, a log
// file and a known log level.
func (cfg *StructuredConfig) validate() error {
	if cfg.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("%w: max file size must be positive, got %d", ErrInvalidUploadConfigs, cfg.Upload.MaxFileSize)
	}

	if len(cfg.Upload.AllowedTypes) == 0 {
		return fmt.Errorf("%w: allow-list is empty", ErrInvalidUploadConfigs)
	}
	for _, t := range cfg.Upload.AllowedTypes {
		mt, _, err := mime.ParseMediaType(t)
		if err != nil || !strings.Contains(mt, "/") {
			return fmt.Errorf("%w: bad media type %q", ErrInvalidUploadConfigs, t)
		}
	}

	if cfg.Log.File == "" {
		return fmt.Errorf("%w: log file is required", ErrInvalidLogConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
