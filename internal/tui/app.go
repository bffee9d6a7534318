package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and the build info window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx  context.Context
	auth adapter.AuthAdapter

	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool

	buildInfo     models.AppBuildInfo
	serverInfo    models.AppBuildInfo
	serverInfoErr error
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, auth adapter.AuthAdapter, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		auth:      auth,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				return r, r.cmdServerInfo()
			}
			return r, nil
		case key.Matches(msg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}

	case serverInfoMsg:
		r.serverInfo, r.serverInfoErr = msg.info, msg.err
		return r, nil

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverInfo, r.serverInfoErr)
	}
	if r.current == nil {
		return renderPage("CREDENTIAL KEEPER", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdServerInfo() tea.Cmd {
	ctx, auth := r.ctx, r.auth
	return func() tea.Msg {
		info, err := auth.Version(ctx)
		return serverInfoMsg{info: info, err: err}
	}
}
