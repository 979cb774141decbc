// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "github.com/MKhiriev/go-upload-form/models"

// Event is a user action delivered to [Controller.Dispatch].
type Event interface {
	event()
}

// FieldChanged carries the new raw content of a text input.
type FieldChanged struct {
	Field models.Field
	Value string
}

// FieldBlurred is sent when a text input loses focus; its value is trimmed.
type FieldBlurred struct {
	Field models.Field
}

// DragEntered highlights the drop zone.
type DragEntered struct{}

// DragLeft removes the drop zone highlight.
type DragLeft struct{}

// FilesDropped carries the files released over the drop zone.
type FilesDropped struct {
	Files []models.RawFile
}

// FilesPicked carries the files chosen with the file picker.
type FilesPicked struct {
	Files []models.RawFile
}

// FileRemoved asks to unstage every file named Name.
type FileRemoved struct {
	Name string
}

// SubmitRequested validates the form and hands it off when valid.
type SubmitRequested struct{}

func (FieldChanged) event()    {}
func (FieldBlurred) event()    {}
func (DragEntered) event()     {}
func (DragLeft) event()        {}
func (FilesDropped) event()    {}
func (FilesPicked) event()     {}
func (FileRemoved) event()     {}
func (SubmitRequested) event() {}
