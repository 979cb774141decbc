// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import "errors"

// ErrInvalidLevel is returned when a configured level name is not a zerolog level.
var ErrInvalidLevel = errors.New("invalid log level")
