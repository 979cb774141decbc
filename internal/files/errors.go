// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package files

import "errors"

var (
	// ErrUnreadable wraps any stat failure of a dropped path.
	ErrUnreadable = errors.New("cannot read file")
	// ErrIsDirectory is returned for dropped directories.
	ErrIsDirectory = errors.New("is a directory")
)
