package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-upload-form/internal/config"
	"github.com/MKhiriev/go-upload-form/internal/tui"
	"github.com/MKhiriev/go-upload-form/models"
)

type stubUI struct {
	err    error
	called bool
	ctx    context.Context
}

func (s *stubUI) Run(ctx context.Context) error {
	s.called = true
	s.ctx = ctx
	return s.err
}

func TestRun_NormalExits(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "nil", err: nil},
		{name: "user quit", err: tui.ErrUserQuit},
		{name: "wrapped user quit", err: errors.Join(errors.New("x"), tui.ErrUserQuit)},
		{name: "cancelled", err: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &stubUI{err: tt.err}

			err := NewAppWithUI(ui, nil).Run(context.Background())

			assert.NoError(t, err)
			assert.True(t, ui.called)
		})
	}
}

func TestRun_PropagatesUIError(t *testing.T) {
	boom := errors.New("terminal gone")
	ui := &stubUI{err: boom}

	err := NewAppWithUI(ui, nil).Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "form ui")
}

func TestRun_PassesDerivedContext(t *testing.T) {
	type ctxKey struct{}
	parent := context.WithValue(context.Background(), ctxKey{}, "v")
	ui := &stubUI{}

	require.NoError(t, NewAppWithUI(ui, nil).Run(parent))

	require.NotNil(t, ui.ctx)
	assert.Equal(t, "v", ui.ctx.Value(ctxKey{}))
	// signal.NotifyContext stops on return
	assert.Error(t, ui.ctx.Err())
}

func TestNewApp_NilConfig(t *testing.T) {
	_, err := NewApp(nil, models.NewAppBuildInfo("", "", ""), nil)

	assert.Error(t, err)
}

func TestNewApp_FromConfig(t *testing.T) {
	cfg := &config.StructuredConfig{
		Upload: config.Upload{MaxFileSize: 1024, AllowedTypes: []string{"image/png"}},
		Log:    config.Log{File: "form.log", Level: "info"},
	}

	app, err := NewApp(cfg, models.NewAppBuildInfo("1.0", "", ""), nil)

	require.NoError(t, err)
	assert.NotNil(t, app.ui)
	assert.NotNil(t, app.log)
}
