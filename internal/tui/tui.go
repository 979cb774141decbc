// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the upload form in the terminal with Bubble Tea and
// translates keys, pastes and file picker selections into form events.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-upload-form/internal/files"
	"github.com/MKhiriev/go-upload-form/internal/form"
	"github.com/MKhiriev/go-upload-form/internal/logger"
	"github.com/MKhiriev/go-upload-form/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

// Options tunes the terminal program.
type Options struct {
	AltScreen bool
}

type TUI struct {
	ctrl      *form.Controller
	resolver  *files.Resolver
	log       *logger.Logger
	buildInfo models.AppBuildInfo
	opts      Options
}

func New(ctrl *form.Controller, resolver *files.Resolver, log *logger.Logger, buildInfo models.AppBuildInfo, opts Options) (*TUI, error) {
	if ctrl == nil {
		return nil, errors.New("tui: nil form controller")
	}
	if resolver == nil {
		resolver = files.NewResolver()
	}
	return &TUI{ctrl: ctrl, resolver: resolver, log: log, buildInfo: buildInfo, opts: opts}, nil
}

// Run shows the form until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := NewFormModel(ctx, t.ctrl, t.resolver, t.log, t.buildInfo)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	finalModel, runErr := tea.NewProgram(model, programOpts...).Run()
	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run form program: %w", runErr)
	}

	result, ok := finalModel.(*FormModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
