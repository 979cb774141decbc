// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidUploadConfigs indicates invalid admission settings
	// (for example, a non-positive size ceiling or a malformed media type).
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidLogConfigs indicates invalid logging settings
	// (for example, an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
