// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// writeClipboard is replaced in tests; headless CI has no clipboard.
var writeClipboard = clipboard.WriteAll

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on enter.
// After a successful login the issued token is shown and can be copied with
// "c".
type LoginModel struct {
	ctx  context.Context
	auth adapter.AuthAdapter

	form       form
	submitting bool
	errMsg     string

	token  string
	status string
}

// NewLoginModel creates a [LoginModel] whose email field has focus and
// whose password field uses masked echo.
func NewLoginModel(ctx context.Context, auth adapter.AuthAdapter) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			formField{label: "Email"},
			formField{label: "Password", password: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResultMsg: clears submitting state and shows the token or the error.
//   - esc: navigates back to the menu.
//   - c: copies the token once one has been issued.
//   - enter: dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.token = msg.token
		m.status = ""
		m.form.reset()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy to clipboard: %v", msg.err)
			return m, nil
		}
		m.status = "Token copied to clipboard"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.status = ""
			m.token = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case m.token != "" && key.Matches(msg, keys.copy):
			return m, cmdCopy(m.token)
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.LoginRequest{
				Email:    strings.TrimSpace(m.form.value(0)),
				Password: m.form.value(1),
			})
		}
	}

	if m.token != "" {
		// the form is hidden while a token is on screen
		return m, nil
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.token != "" {
		b.WriteString(successStyle.Render("Logged in. Your token:"))
		b.WriteString("\n")
		b.WriteString(tokenBoxStyle.Render(m.token))
		b.WriteString("\n")
		if owner := tokenOwner(m.token); owner != "" {
			b.WriteString(owner)
			b.WriteString("\n")
		}
		if m.status != "" {
			b.WriteString("\n")
			b.WriteString(m.status)
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.form.view())
		if m.submitting {
			b.WriteString("\n[Logging in...]\n")
		} else {
			b.WriteString("\n[Log in]\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "esc: back │ tab: next field │ enter: submit"
	if m.token != "" {
		hotKeys = "esc: back │ c: copy token"
	}
	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *LoginModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx, auth := m.ctx, m.auth

	return func() tea.Msg {
		token, err := auth.Login(ctx, req)
		return loginResultMsg{token: token, err: err}
	}
}

// tokenOwner describes whom token was issued to. Nothing is shown for a
// token the client cannot decode.
func tokenOwner(token string) string {
	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil || claims.Email == "" {
		return ""
	}

	owner := fmt.Sprintf("Signed in as %s <%s>", claims.Name, claims.Email)
	if claims.ExpiresAt != nil {
		owner += ", expires " + claims.ExpiresAt.Local().Format(time.DateTime)
	}
	return owner
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}
