package tui

import "github.com/MKhiriev/go-upload-form/models"

// resolvedMsg carries the outcome of stat-ing a set of dropped or picked
// paths.
type resolvedMsg struct {
	source fileSource
	files  []models.RawFile
	errs   []error
}

type clipboardMsg struct {
	text string
	err  error
}

type fileSource int

const (
	sourceDrop fileSource = iota
	sourcePicker
)
