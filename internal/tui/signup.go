package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// SignupModel collects name, email and password and registers the account.
// On success it returns to the menu with a [SignupSuccessNotice].
type SignupModel struct {
	ctx  context.Context
	auth adapter.AuthAdapter

	form       form
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, auth adapter.AuthAdapter) *SignupModel {
	return &SignupModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			formField{label: "Name"},
			formField{label: "Email"},
			formField{label: "Password", password: true},
		),
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signupResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = describeError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: SignupSuccessNotice{Message: result.message, Email: result.email},
			}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(models.SignupRequest{
				Name:     strings.TrimSpace(m.form.value(0)),
				Email:    strings.TrimSpace(m.form.value(1)),
				Password: m.form.value(2),
			})
		}
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

// cmdSignup leaves input validation to the server so that the messages
// shown match the API.
func (m *SignupModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx, auth := m.ctx, m.auth

	return func() tea.Msg {
		message, err := auth.Signup(ctx, req)
		return signupResultMsg{message: message, email: req.Email, err: err}
	}
}
