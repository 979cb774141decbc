// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// upload form: the validator, the controller and the terminal UI.
//
// All Msg* constants are human-readable strings shown next to the offending
// control or in the status line. Keeping them in one place ensures
// consistent wording throughout the form.
package app

const (
	// MsgInvalidName is shown under the name input when the name is shorter
	// than two characters.
	MsgInvalidName = "Please enter a valid name."

	// MsgNameHasDigits is shown under the name input when the name contains
	// a decimal digit. It replaces MsgInvalidName when both rules fail.
	MsgNameHasDigits = "Please enter a valid name without numbers"

	// MsgInvalidEmail is shown under the email input when the address is
	// empty or does not look like local@domain.tld.
	MsgInvalidEmail = "Please enter a valid email address."

	// MsgSubmitted is written into the status line after a successful
	// submission.
	MsgSubmitted = "Form submitted"

	// MsgSubmitFailed prefixes the status line when the downstream consumer
	// refused the submission.
	MsgSubmitFailed = "Submission failed"

	// MsgSkippedPaths prefixes the status line when some dropped paths could
	// not be read.
	MsgSkippedPaths = "Skipped"

	// MsgClipboardEmpty is shown when a clipboard paste yields no paths.
	MsgClipboardEmpty = "Clipboard contains no file paths"

	// MsgClipboardUnavailable is shown when the system clipboard cannot be
	// read.
	MsgClipboardUnavailable = "Clipboard unavailable"
)
