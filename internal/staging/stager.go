// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package staging decides which offered files enter the pending upload list.
//
// Every file of a batch is checked on its own against a [Policy]: declared
// media type, byte size, and (name, size) duplication against the files that
// were staged before the batch started. Files of the same batch are never
// compared with each other.
package staging

import (
	"github.com/MKhiriev/go-upload-form/models"
)

// DefaultMaxSize is the byte ceiling for a single staged file (5 MiB).
const DefaultMaxSize int64 = 5 * 1024 * 1024

// defaultAllowedTypes is the media type allow-list of the form.
var defaultAllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

// Policy holds the admission limits.
type Policy struct {
	// AllowedTypes lists the accepted media types.
	AllowedTypes []string
	// MaxSize is the inclusive byte ceiling.
	MaxSize int64
}

// DefaultPolicy returns the jpeg/png/webp allow-list with a 5 MiB ceiling.
func DefaultPolicy() Policy {
	types := make([]string, len(defaultAllowedTypes))
	copy(types, defaultAllowedTypes)
	return Policy{AllowedTypes: types, MaxSize: DefaultMaxSize}
}

// Stager applies a Policy to batches of incoming files.
type Stager struct {
	allowed map[string]struct{}
	maxSize int64
}

// NewStager returns a Stager enforcing p. Zero fields of p fall back to the
// defaults.
func NewStager(p Policy) *Stager {
	if len(p.AllowedTypes) == 0 {
		p.AllowedTypes = defaultAllowedTypes
	}
	if p.MaxSize <= 0 {
		p.MaxSize = DefaultMaxSize
	}

	allowed := make(map[string]struct{}, len(p.AllowedTypes))
	for _, t := range p.AllowedTypes {
		allowed[t] = struct{}{}
	}

	return &Stager{allowed: allowed, maxSize: p.MaxSize}
}

// MaxSize returns the enforced byte ceiling.
func (s *Stager) MaxSize() int64 {
	return s.maxSize
}

// Allowed reports whether mediaType is on the allow-list. The comparison is
// exact: case, surrounding blanks and parameters all count, so every staged
// file carries a type spelled as in the allow-list.
func (s *Stager) Allowed(mediaType string) bool {
	_, ok := s.allowed[mediaType]
	return ok
}

// Check returns the reason f would be refused given the already staged set,
// or "" when f is admissible.
func (s *Stager) Check(existing map[models.FileKey]struct{}, f models.RawFile) models.AdmissionReason {
	if !s.Allowed(f.Type) {
		return models.ReasonUnsupportedType
	}
	if f.Size > s.maxSize {
		return models.ReasonTooLarge
	}
	if _, dup := existing[models.StagedFile(f).Key()]; dup {
		return models.ReasonDuplicate
	}
	return ""
}

// Admit filters incoming against the policy and the existing staged files.
// Accepted files are appended to a copy of existing in input order; existing
// itself is never modified.
func (s *Stager) Admit(existing []models.StagedFile, incoming []models.RawFile) Batch {
	keys := make(map[models.FileKey]struct{}, len(existing))
	for _, f := range existing {
		keys[f.Key()] = struct{}{}
	}

	files := make([]models.StagedFile, len(existing), len(existing)+len(incoming))
	copy(files, existing)

	var b Batch
	for _, f := range incoming {
		if reason := s.Check(keys, f); reason != "" {
			b.Errors = append(b.Errors, models.FileAdmissionError{FileName: f.Name, Reason: reason})
			continue
		}
		b.Accepted = append(b.Accepted, models.StagedFile(f))
	}

	b.Files = append(files, b.Accepted...)
	return b
}

// Remove returns the staged files whose name differs from name. Size plays no
// part in the match, so every entry sharing the name goes.
func Remove(existing []models.StagedFile, name string) []models.StagedFile {
	out := make([]models.StagedFile, 0, len(existing))
	for _, f := range existing {
		if f.Name != name {
			out = append(out, f)
		}
	}
	return out
}
