// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"

	"github.com/MKhiriev/go-upload-form/internal/logger"
	"github.com/MKhiriev/go-upload-form/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=submitter.go -destination=../mock/submitter_mock.go -package=mock

// Submitter receives a validated submission. It is the seam where a real
// deployment would plug in its transport.
type Submitter interface {
	Submit(ctx context.Context, sub models.Submission) error
}

// LogSubmitter writes every submission as a single structured log entry.
type LogSubmitter struct {
	log *logger.Logger
}

// NewLogSubmitter returns a Submitter logging through log.
func NewLogSubmitter(log *logger.Logger) *LogSubmitter {
	return &LogSubmitter{log: log}
}

// Submit implements Submitter. It never fails.
func (s *LogSubmitter) Submit(_ context.Context, sub models.Submission) error {
	files := zerolog.Arr()
	for _, f := range sub.Files {
		files.Dict(zerolog.Dict().
			Str("name", f.Name).
			Str("type", f.Type).
			Int64("size", f.Size))
	}

	s.log.Info().
		Str("submission_id", sub.ID.String()).
		Str("name", sub.Name).
		Str("email", sub.Email).
		Array("files", files).
		Int64("total_size", sub.TotalSize()).
		Time("created_at", sub.CreatedAt).
		Msg("form submitted")

	return nil
}
