// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf16"

	"github.com/MKhiriev/go-upload-form/internal/app"
	"github.com/MKhiriev/go-upload-form/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the applicant name.
	FieldName = string(models.FieldName)

	// FieldEmail targets the applicant email address.
	FieldEmail = string(models.FieldEmail)
)

// minNameLength is the shortest accepted name, counted in UTF-16 code units,
// so a character outside the Basic Multilingual Plane counts twice.
const minNameLength = 2

// nonSpace is one character that is not whitespace in the ECMAScript sense:
// ASCII blanks, the vertical tab, BOM and every Unicode separator. RE2's \S
// only excludes the ASCII set.
const nonSpace = `[^\t\n\v\f\r \x{FEFF}\p{Z}]`

// emailPattern is a lightweight shape check, not RFC 5322. It is unanchored.
var emailPattern = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

// FormValidator implements [Validator] for [models.FormState].
type FormValidator struct{}

// NewFormValidator constructs a new FormValidator and returns it as the
// Validator interface.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate checks a models.FormState (value or pointer). Without fields both
// name and email are checked. Failures of several fields are joined, so
// callers test them with errors.Is.
func (v *FormValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FormState:
		return v.validateFormState(value, fields...)
	case *models.FormState:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateFormState(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateFormState(state models.FormState, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(state.Name); err != nil {
				errs = append(errs, err)
			}
		case FieldEmail:
			if err := validateEmail(state.Email); err != nil {
				errs = append(errs, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

// validateName applies the name rules in order. The digit rule is evaluated
// last and its error replaces the length error when both fail.
func validateName(name string) error {
	var err error
	if nameLength(name) < minNameLength {
		err = ErrInvalidName
	}
	if containsDigit(name) {
		err = ErrNameHasDigits
	}
	return err
}

func validateEmail(email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func nameLength(name string) int {
	n := 0
	for _, r := range name {
		n += max(utf16.RuneLen(r), 1)
	}
	return n
}

// containsDigit reports an ASCII digit. Other scripts' digits are letters
// as far as the name rule is concerned.
func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// MessageFor maps a validation error to the text shown under the input.
// It returns "" for nil and for errors this package does not produce.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNameHasDigits):
		return app.MsgNameHasDigits
	case errors.Is(err, ErrInvalidName):
		return app.MsgInvalidName
	case errors.Is(err, ErrInvalidEmail):
		return app.MsgInvalidEmail
	default:
		return ""
	}
}

// ValidateInputs runs both field checks and returns their messages. It has no
// side effects; the caller reflects the result into its state.
func ValidateInputs(name, email string) models.ValidationResult {
	return models.ValidationResult{
		NameError:  MessageFor(validateName(name)),
		EmailError: MessageFor(validateEmail(email)),
	}
}
