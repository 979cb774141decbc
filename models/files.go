// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RawFile is the metadata of a file offered to the form, either dropped into
// the drop zone or chosen with the file picker.
//
// Type is the declared media type (e.g. "image/png"). Path is where the file
// was found; it is informational and never part of any identity check.
type RawFile struct {
	Name string
	Type string
	Size int64
	Path string
}

// StagedFile is a file accepted into the pending upload list.
type StagedFile RawFile

// FileKey is the de-duplication key of a staged file.
type FileKey struct {
	Name string
	Size int64
}

// Key returns the (name, size) pair used to detect duplicates.
func (f StagedFile) Key() FileKey {
	return FileKey{Name: f.Name, Size: f.Size}
}

// AdmissionReason explains why a file was refused by the stager.
type AdmissionReason string

const (
	ReasonUnsupportedType AdmissionReason = "unsupported file type"
	ReasonTooLarge        AdmissionReason = "file too large"
	ReasonDuplicate       AdmissionReason = "duplicate file"
)

// FileAdmissionError is produced for every file rejected during a batch add.
type FileAdmissionError struct {
	FileName string
	Reason   AdmissionReason
}

// Error implements error and renders the "<name>: <reason>" banner fragment.
func (e FileAdmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.FileName, e.Reason)
}
