package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-upload-form/models"
	"github.com/dustin/go-humanize"
)

const uiDivider = "──────────────────────────────────────────────────────"

// supportedFormatsHint is the help line shown inside the drop zone.
const supportedFormatsHint = "Supports: JPEG, JPG, PNG"

// View implements [tea.Model].
func (m *FormModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.picking {
		return appStyle.Render(renderPage("Choose a file", m.picker.View(), "enter: select  esc: back"))
	}

	snap := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString("Name\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(fieldError(snap.Validation.NameError))

	b.WriteString("Email\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(fieldError(snap.Validation.EmailError))

	b.WriteString(m.renderDropZone(snap.Dragging))
	b.WriteString("\n")
	if snap.Banner != "" {
		b.WriteString(errorStyle.Render(snap.Banner))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFiles(snap.Files))
	b.WriteString("\n")

	button := buttonStyle
	if m.focus == focusSubmit {
		button = buttonFocusedStyle
	}
	b.WriteString(button.Render("Submit"))

	if snap.Status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(snap.Status))
	}

	return appStyle.Render(renderPage(titleStyle.Render("UPLOAD FORM"), b.String(), m.hotKeys()))
}

func (m *FormModel) renderDropZone(dragging bool) string {
	style := dropZoneStyle
	switch {
	case dragging:
		style = dropZoneActiveStyle
	case m.focus == focusDrop:
		style = dropZoneFocusedStyle
	}

	text := "Paste file paths here, or press o to browse"
	if dragging {
		text = "Release to drop files"
	}
	return style.Render(text + "\n" + helpStyle.Render(supportedFormatsHint))
}

func (m *FormModel) renderFiles(staged []models.StagedFile) string {
	if len(staged) == 0 {
		return helpStyle.Render("No files staged")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Files (%d)\n", len(staged)))
	for i, f := range staged {
		line := fmt.Sprintf("%s  %s", fitText(f.Name, 40), humanize.IBytes(uint64(f.Size)))
		if m.focus == focusFiles && i == m.fileIdx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *FormModel) hotKeys() string {
	switch m.focus {
	case focusDrop:
		return "o: browse  p: paste clipboard  tab: next  ctrl+s: submit  v: info"
	case focusFiles:
		return "↑/↓: select  d: remove  tab: next  ctrl+s: submit  v: info"
	case focusSubmit:
		return "enter: submit  tab: next  v: info"
	default:
		return "tab: next field  shift+tab: previous  ctrl+s: submit"
	}
}

func fieldError(msg string) string {
	if msg == "" {
		return "\n"
	}
	return errorStyle.Render(msg) + "\n\n"
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: upload-form\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc: back")
}

// fitText shortens v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
