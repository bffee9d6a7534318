package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// VerifyModel sends a token to the server and shows the decoded claims.
// The token field is prefilled with the token from the last login.
type VerifyModel struct {
	ctx  context.Context
	auth adapter.AuthAdapter

	form       form
	submitting bool
	errMsg     string

	claims *models.Claims
}

func NewVerifyModel(ctx context.Context, auth adapter.AuthAdapter) *VerifyModel {
	return &VerifyModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(formField{label: "Token"}),
	}
}

func (m *VerifyModel) Init() tea.Cmd {
	if m.form.value(0) == "" {
		m.form.fields[0].input.SetValue(m.auth.Token())
	}
	return textinput.Blink
}

func (m *VerifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(verifyResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.claims = nil
			m.errMsg = describeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.claims = &result.claims
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.claims = nil
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			token := strings.TrimSpace(m.form.value(0))
			if token == "" {
				m.errMsg = "Enter a token or log in first"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdVerify(token)
		}
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *VerifyModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Verifying...]\n")
	} else {
		b.WriteString("\n[Verify]\n")
	}

	if m.claims != nil {
		b.WriteString("\n")
		b.WriteString(successStyle.Render("Token is valid"))
		b.WriteString("\n")
		b.WriteString(renderClaims(*m.claims))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("VERIFY TOKEN", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: verify")
}

func renderClaims(c models.Claims) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name    │ %s\n", c.Name))
	b.WriteString(fmt.Sprintf("Email   │ %s\n", c.Email))
	b.WriteString(fmt.Sprintf("ID      │ %s\n", c.ID))
	if c.IssuedAt != nil {
		b.WriteString(fmt.Sprintf("Issued  │ %s\n", c.IssuedAt.Local().Format(time.DateTime)))
	}
	if c.ExpiresAt != nil {
		b.WriteString(fmt.Sprintf("Expires │ %s\n", c.ExpiresAt.Local().Format(time.DateTime)))
	}
	return b.String()
}

func (m *VerifyModel) cmdVerify(token string) tea.Cmd {
	ctx, auth := m.ctx, m.auth

	return func() tea.Msg {
		claims, err := auth.Verify(ctx, token)
		return verifyResultMsg{claims: claims, err: err}
	}
}
