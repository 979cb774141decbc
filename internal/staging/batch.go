// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staging

import (
	"strings"

	"github.com/MKhiriev/go-upload-form/models"
)

// Batch is the outcome of one [Stager.Admit] call.
type Batch struct {
	// Files is the full staged sequence after the batch: previously staged
	// files followed by Accepted.
	Files []models.StagedFile
	// Accepted holds the files of the batch that passed, in input order.
	Accepted []models.StagedFile
	// Errors holds one entry per refused file, in input order.
	Errors []models.FileAdmissionError
}

// AnyAccepted reports whether at least one file of the batch passed.
func (b Batch) AnyAccepted() bool {
	return len(b.Accepted) > 0
}

// Message joins the rejection fragments into the banner text.
func (b Batch) Message() string {
	parts := make([]string, len(b.Errors))
	for i, e := range b.Errors {
		parts[i] = e.Error()
	}
	return strings.Join(parts, ", ")
}

// Banner returns the error banner to display after the batch, given the
// banner shown before it.
//
// An accepted file clears the banner, rejections then overwrite it. A batch
// with neither leaves prev untouched.
func (b Batch) Banner(prev string) string {
	banner := prev
	if b.AnyAccepted() {
		banner = ""
	}
	if len(b.Errors) > 0 {
		banner = b.Message()
	}
	return banner
}
