// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form owns the state of the upload form and the single dispatcher
// that applies user events to it.
//
// A [Controller] holds the text inputs, their validation messages, the staged
// files, the file error banner and the drop zone highlight. Events are applied
// synchronously and to completion, one at a time, so the controller needs no
// locking; it is not safe for concurrent use.
package form

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-upload-form/internal/app"
	"github.com/MKhiriev/go-upload-form/internal/logger"
	"github.com/MKhiriev/go-upload-form/internal/staging"
	"github.com/MKhiriev/go-upload-form/internal/validators"
	"github.com/MKhiriev/go-upload-form/models"
	"github.com/google/uuid"
)

// Snapshot is a read-only copy of the controller state used for rendering.
type Snapshot struct {
	State      models.FormState
	Validation models.ValidationResult
	Files      []models.StagedFile
	Banner     string
	Status     string
	Dragging   bool
}

// Controller is the explicit state container of the form.
type Controller struct {
	stager    *staging.Stager
	submitter Submitter
	log       *logger.Logger

	now   func() time.Time
	newID func() uuid.UUID

	state      models.FormState
	validation models.ValidationResult
	files      []models.StagedFile
	banner     string
	status     string
	dragging   bool
}

// NewController returns an empty form enforcing stager and handing valid
// submissions to submitter.
func NewController(stager *staging.Stager, submitter Submitter, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		stager:    stager,
		submitter: submitter,
		log:       log,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// Dispatch applies ev to the form. Validation and admission failures are
// recorded in state, not returned; errors signal an unknown event or field or
// a failed handoff.
func (c *Controller) Dispatch(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case FieldChanged:
		return c.setField(e.Field, e.Value)
	case FieldBlurred:
		return c.setField(e.Field, strings.TrimSpace(c.state.Value(e.Field)))
	case DragEntered:
		c.dragging = true
	case DragLeft:
		c.dragging = false
	case FilesDropped:
		c.admit(e.Files)
	case FilesPicked:
		c.admit(e.Files)
	case FileRemoved:
		c.remove(e.Name)
	case SubmitRequested:
		return c.submit(ctx)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	files := make([]models.StagedFile, len(c.files))
	copy(files, c.files)

	return Snapshot{
		State:      c.state,
		Validation: c.validation,
		Files:      files,
		Banner:     c.banner,
		Status:     c.status,
		Dragging:   c.dragging,
	}
}

// SetStatus replaces the status line. The UI uses it for notices that do not
// belong to a field or the file banner.
func (c *Controller) SetStatus(status string) {
	c.status = status
}

func (c *Controller) setField(f models.Field, v string) error {
	switch f {
	case models.FieldName:
		c.state.Name = v
	case models.FieldEmail:
		c.state.Email = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

// admit runs a batch through the stager. The drag highlight is cleared for
// every batch, whichever control delivered it.
func (c *Controller) admit(incoming []models.RawFile) {
	batch := c.stager.Admit(c.files, incoming)

	c.dragging = false
	c.files = batch.Files
	c.banner = batch.Banner(c.banner)

	c.log.Debug().
		Int("offered", len(incoming)).
		Int("accepted", len(batch.Accepted)).
		Int("rejected", len(batch.Errors)).
		Int("staged", len(c.files)).
		Msg("file batch admitted")
}

func (c *Controller) remove(name string) {
	before := len(c.files)
	c.files = staging.Remove(c.files, name)
	c.banner = ""

	c.log.Debug().
		Str("file", name).
		Int("removed", before-len(c.files)).
		Msg("staged file removed")
}

// submit validates, then hands off and resets. Nothing is reset when either
// field has a message or the submitter fails.
func (c *Controller) submit(ctx context.Context) error {
	c.validation = validators.ValidateInputs(c.state.Name, c.state.Email)
	if !c.validation.Valid() {
		c.log.Debug().
			Str("name_error", c.validation.NameError).
			Str("email_error", c.validation.EmailError).
			Msg("submit rejected by validation")
		return nil
	}

	files := make([]models.StagedFile, len(c.files))
	copy(files, c.files)

	sub := models.Submission{
		ID:        c.newID(),
		Name:      c.state.Name,
		Email:     c.state.Email,
		Files:     files,
		CreatedAt: c.now(),
	}

	if err := c.submitter.Submit(ctx, sub); err != nil {
		c.status = fmt.Sprintf("%s: %v", app.MsgSubmitFailed, err)
		c.log.Error().Err(err).Str("submission_id", sub.ID.String()).Msg("submit failed")
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	c.state = models.FormState{}
	c.validation = models.ValidationResult{}
	c.files = nil
	c.status = app.MsgSubmitted
	return nil
}
