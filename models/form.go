// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared by the form controller,
// the validator, the file stager and the terminal UI.
package models

// Field identifies one of the text inputs of the form.
type Field string

const (
	// FieldName is the applicant name input.
	FieldName Field = "name"
	// FieldEmail is the applicant email input.
	FieldEmail Field = "email"
)

// FormState is the current content of the text inputs. It is owned by a
// single controller and mutated on every keystroke.
type FormState struct {
	Name  string
	Email string
}

// Value returns the current value of f.
func (s FormState) Value(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	default:
		return ""
	}
}

// ValidationResult carries the field-scoped messages produced by a single
// validation pass. An empty message means the field is valid.
type ValidationResult struct {
	NameError  string
	EmailError string
}

// Valid reports whether both fields passed.
func (r ValidationResult) Valid() bool {
	return r.NameError == "" && r.EmailError == ""
}

// Message returns the message recorded for f.
func (r ValidationResult) Message(f Field) string {
	switch f {
	case FieldName:
		return r.NameError
	case FieldEmail:
		return r.EmailError
	default:
		return ""
	}
}
