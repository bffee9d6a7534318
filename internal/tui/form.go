package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label    string
	input    textinput.Model
	password bool
}

// form is a vertical list of labelled text inputs with tab navigation.
type form struct {
	fields []formField
	focus  int
}

func newForm(fields ...formField) form {
	for i := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(fields[i].label)
		in.CharLimit = 256
		in.Width = 40
		if fields[i].password {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		fields[i].input = in
	}
	if len(fields) > 0 {
		fields[0].input.Focus()
	}
	return form{fields: fields}
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
}

// update handles focus keys and forwards everything else to the focused
// input. handled reports whether msg was a focus key.
func (f *form) update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.next):
			f.move(1)
			return nil, true
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.prev):
			f.move(-1)
			return nil, true
		}
	}

	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd, false
}

func (f *form) move(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) view() string {
	width := 0
	for _, field := range f.fields {
		width = max(width, len(field.label))
	}

	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", width, field.label, field.input.View()))
	}
	return b.String()
}
