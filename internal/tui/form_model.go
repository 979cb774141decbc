// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-upload-form/internal/app"
	"github.com/MKhiriev/go-upload-form/internal/files"
	"github.com/MKhiriev/go-upload-form/internal/form"
	"github.com/MKhiriev/go-upload-form/internal/logger"
	"github.com/MKhiriev/go-upload-form/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusName focusArea = iota
	focusEmail
	focusDrop
	focusFiles
	focusSubmit
	focusAreas
)

// FormModel is the Bubble Tea model of the upload form. It owns only the
// widgets; every state change goes through the [form.Controller] and the
// widgets are re-synced from its snapshot afterwards.
type FormModel struct {
	ctx       context.Context
	ctrl      *form.Controller
	resolver  *files.Resolver
	log       *logger.Logger
	buildInfo models.AppBuildInfo

	readClipboard func() (string, error)

	name   textinput.Model
	email  textinput.Model
	picker filepicker.Model

	focus         focusArea
	fileIdx       int
	picking       bool
	showBuildInfo bool
	quitByUser    bool
}

// NewFormModel creates a [FormModel] bound to ctrl. The name input receives
// focus immediately.
func NewFormModel(ctx context.Context, ctrl *form.Controller, resolver *files.Resolver, log *logger.Logger, buildInfo models.AppBuildInfo) *FormModel {
	if log == nil {
		log = logger.Nop()
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 128
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "your@email.com"
	emailInput.CharLimit = 256
	emailInput.Width = 40

	picker := filepicker.New()
	if wd, err := os.Getwd(); err == nil {
		picker.CurrentDirectory = wd
	}

	return &FormModel{
		ctx:           ctx,
		ctrl:          ctrl,
		resolver:      resolver,
		log:           log,
		buildInfo:     buildInfo,
		readClipboard: clipboard.ReadAll,
		name:          nameInput,
		email:         emailInput,
		picker:        picker,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Key handling depends on the focused area:
//   - name/email: keys edit the field; leaving the field trims it.
//   - drop zone:  bracketed paste drops paths, o browses, p pastes the clipboard.
//   - file list:  up/down select, d/delete removes.
//   - submit:     enter submits.
//
// tab/shift+tab cycle focus, ctrl+s submits from anywhere and ctrl+c quits.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.updateKey(msg)
	case resolvedMsg:
		m.applyResolved(msg)
		return m, nil
	case clipboardMsg:
		return m, m.applyClipboard(msg)
	}

	// Cursor blinks go to the inputs, directory listings and window sizes to
	// the picker.
	var nameCmd, emailCmd, pickerCmd tea.Cmd
	m.name, nameCmd = m.name.Update(msg)
	m.email, emailCmd = m.email.Update(msg)
	m.picker, pickerCmd = m.picker.Update(msg)
	return m, tea.Batch(nameCmd, emailCmd, pickerCmd)
}

func (m *FormModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.submit):
		m.submit()
		return m, nil
	case key.Matches(msg, keys.tab):
		return m, m.moveFocus(1)
	case key.Matches(msg, keys.backtab):
		return m, m.moveFocus(-1)
	}

	switch m.focus {
	case focusName, focusEmail:
		return m, m.updateInput(msg)
	case focusDrop:
		return m.updateDrop(msg)
	case focusFiles:
		m.updateFiles(msg)
	case focusSubmit:
		switch {
		case key.Matches(msg, keys.enter):
			m.submit()
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
		}
	}
	return m, nil
}

func (m *FormModel) updateInput(msg tea.KeyMsg) tea.Cmd {
	input, field := m.activeInput()
	before := input.Value()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	if input.Value() != before {
		m.dispatch(form.FieldChanged{Field: field, Value: input.Value()})
	}
	return cmd
}

func (m *FormModel) updateDrop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Paste {
		paths := files.SplitDropped(string(msg.Runes))
		if len(paths) == 0 {
			return m, nil
		}
		return m, m.cmdResolve(sourceDrop, paths)
	}

	switch {
	case key.Matches(msg, keys.browse):
		m.picking = true
		return m, m.picker.Init()
	case key.Matches(msg, keys.paste):
		return m, m.cmdReadClipboard()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m *FormModel) updateFiles(msg tea.KeyMsg) {
	staged := m.ctrl.Snapshot().Files

	switch {
	case key.Matches(msg, keys.up):
		if m.fileIdx > 0 {
			m.fileIdx--
		}
	case key.Matches(msg, keys.down):
		if m.fileIdx < len(staged)-1 {
			m.fileIdx++
		}
	case key.Matches(msg, keys.delete):
		if m.fileIdx < len(staged) {
			m.dispatch(form.FileRemoved{Name: staged[m.fileIdx].Name})
		}
		if len(m.ctrl.Snapshot().Files) == 0 {
			m.focus = focusSubmit
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
}

func (m *FormModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		return m, tea.Batch(cmd, m.cmdResolve(sourcePicker, []string{path}))
	}
	return m, cmd
}

// moveFocus leaves the current area and enters the next one in direction
// step. The file list is skipped while it is empty.
func (m *FormModel) moveFocus(step int) tea.Cmd {
	m.leave(m.focus)

	next := m.focus
	for {
		next = (next + focusArea(step) + focusAreas) % focusAreas
		if next != focusFiles || len(m.ctrl.Snapshot().Files) > 0 {
			break
		}
	}
	m.focus = next

	return m.enter(next)
}

func (m *FormModel) leave(area focusArea) {
	switch area {
	case focusName, focusEmail:
		input, field := m.activeInput()
		input.Blur()
		m.dispatch(form.FieldBlurred{Field: field})
	case focusDrop:
		m.dispatch(form.DragLeft{})
	}
}

func (m *FormModel) enter(area focusArea) tea.Cmd {
	switch area {
	case focusName:
		return m.name.Focus()
	case focusEmail:
		return m.email.Focus()
	case focusDrop:
		m.dispatch(form.DragEntered{})
	}
	return nil
}

// submit trims the focused field, as leaving it would, then submits.
func (m *FormModel) submit() {
	if m.focus == focusName || m.focus == focusEmail {
		_, field := m.activeInput()
		m.dispatch(form.FieldBlurred{Field: field})
	}
	m.dispatch(form.SubmitRequested{})
}

func (m *FormModel) applyResolved(msg resolvedMsg) {
	if len(msg.errs) > 0 {
		reasons := make([]string, 0, len(msg.errs))
		for _, err := range msg.errs {
			m.log.Warn().Err(err).Msg("dropped path skipped")
			reasons = append(reasons, err.Error())
		}
		m.ctrl.SetStatus(fmt.Sprintf("%s: %s", app.MsgSkippedPaths, strings.Join(reasons, "; ")))
	} else {
		m.ctrl.SetStatus("")
	}

	switch msg.source {
	case sourcePicker:
		m.dispatch(form.FilesPicked{Files: msg.files})
	default:
		m.dispatch(form.FilesDropped{Files: msg.files})
	}
}

func (m *FormModel) applyClipboard(msg clipboardMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Msg("clipboard read failed")
		m.ctrl.SetStatus(app.MsgClipboardUnavailable)
		return nil
	}

	paths := files.SplitDropped(msg.text)
	if len(paths) == 0 {
		m.ctrl.SetStatus(app.MsgClipboardEmpty)
		return nil
	}
	return m.cmdResolve(sourceDrop, paths)
}

func (m *FormModel) cmdResolve(source fileSource, paths []string) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		raw, errs := resolver.Resolve(paths)
		return resolvedMsg{source: source, files: raw, errs: errs}
	}
}

func (m *FormModel) cmdReadClipboard() tea.Cmd {
	read := m.readClipboard
	return func() tea.Msg {
		text, err := read()
		return clipboardMsg{text: text, err: err}
	}
}

// dispatch forwards ev to the controller and re-syncs the widgets. Handoff
// failures are already reflected in the status line.
func (m *FormModel) dispatch(ev form.Event) {
	if err := m.ctrl.Dispatch(m.ctx, ev); err != nil {
		m.log.Error().Err(err).Msgf("dispatch %T", ev)
	}
	m.sync()
}

func (m *FormModel) sync() {
	snap := m.ctrl.Snapshot()
	if m.name.Value() != snap.State.Name {
		m.name.SetValue(snap.State.Name)
	}
	if m.email.Value() != snap.State.Email {
		m.email.SetValue(snap.State.Email)
	}

	if m.fileIdx >= len(snap.Files) {
		m.fileIdx = len(snap.Files) - 1
	}
	if m.fileIdx < 0 {
		m.fileIdx = 0
	}
}

func (m *FormModel) activeInput() (*textinput.Model, models.Field) {
	if m.focus == focusEmail {
		return &m.email, models.FieldEmail
	}
	return &m.name, models.FieldName
}
