// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "errors"

var (
	// ErrUnknownEvent is returned by Dispatch for event types it does not handle.
	ErrUnknownEvent = errors.New("unknown form event")
	// ErrUnknownField is returned for field events naming neither name nor email.
	ErrUnknownField = errors.New("unknown form field")
	// ErrSubmitFailed wraps errors returned by the Submitter.
	ErrSubmitFailed = errors.New("submission failed")
)
