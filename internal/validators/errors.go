// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName   = errors.New("invalid name")
	ErrNameHasDigits = errors.New("name contains digits")
	ErrInvalidEmail  = errors.New("invalid email")
)
