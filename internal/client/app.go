package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/tui"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

// App runs the terminal client until the user leaves it.
type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNilUI
	}

	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits. Quitting with ctrl+c is a normal exit.
func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		a.logger.Err(err).Msg("client ui failed")
		return fmt.Errorf("run ui: %w", err)
	}
}
