// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission is the tuple handed to the downstream consumer once the form
// passes validation.
type Submission struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Files     []StagedFile
	CreatedAt time.Time
}

// TotalSize returns the combined byte size of all submitted files.
func (s Submission) TotalSize() int64 {
	var total int64
	for _, f := range s.Files {
		total += f.Size
	}
	return total
}
