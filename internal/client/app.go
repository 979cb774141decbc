package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-upload-form/internal/config"
	"github.com/MKhiriev/go-upload-form/internal/files"
	"github.com/MKhiriev/go-upload-form/internal/form"
	"github.com/MKhiriev/go-upload-form/internal/logger"
	"github.com/MKhiriev/go-upload-form/internal/staging"
	"github.com/MKhiriev/go-upload-form/internal/tui"
	"github.com/MKhiriev/go-upload-form/models"
)

type App struct {
	ui  UI
	log *logger.Logger
}

// NewApp assembles the form from cfg: a stager enforcing the upload policy,
// a controller handing submissions to the log, and the terminal UI.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("client: nil config")
	}
	if log == nil {
		log = logger.Nop()
	}

	stager := staging.NewStager(cfg.Policy())
	ctrl := form.NewController(stager, form.NewLogSubmitter(log), log)

	ui, err := tui.New(ctrl, files.NewResolver(), log, buildInfo, tui.Options{AltScreen: cfg.UI.AltScreen})
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	log.Info().
		Int64("max_file_size", stager.MaxSize()).
		Strs("allowed_types", cfg.Upload.AllowedTypes).
		Msg("form app initialized")

	return NewAppWithUI(ui, log), nil
}

// NewAppWithUI wraps an already built UI.
func NewAppWithUI(ui UI, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{ui: ui, log: log}
}

// Run blocks until the user quits or the process receives SIGINT/SIGTERM.
// Both are a normal exit.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit), errors.Is(err, context.Canceled):
		a.log.Info().Msg("form closed")
		return nil
	default:
		return fmt.Errorf("form ui: %w", err)
	}
}
