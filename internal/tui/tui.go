package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

var ErrUserQuit = errors.New("user quit the program")

// Page names used with [NavigateTo].
const (
	pageMenu   = "menu"
	pageSignup = "signup"
	pageLogin  = "login"
	pageVerify = "verify"
)

type TUI struct {
	auth      adapter.AuthAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(auth adapter.AuthAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{auth: auth, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user leaves the program. Leaving with ctrl+c or q
// returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(),
		pageSignup: NewSignupModel(ctx, t.auth),
		pageLogin:  NewLoginModel(ctx, t.auth),
		pageVerify: NewVerifyModel(ctx, t.auth),
	}

	return NewRootModel(ctx, t.auth, pages, pageMenu, t.buildInfo)
}
