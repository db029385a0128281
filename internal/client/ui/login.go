package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginDoneMsg struct{ err error }

type loginModel struct {
	deps    *deps
	inputs  [2]textinput.Model // username, password
	focus   int
	pending bool
}

func newLoginModel(d *deps) loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{deps: d, inputs: [2]textinput.Model{username, password}}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.pending = false
		if msg.err != nil {
			return m, showNotice(noticeError, loginErrorText(msg.err))
		}
		return m, tea.Batch(navigate(screenHome), showNotice(noticeSuccess, "Welcome!"))

	case tea.KeyMsg:
		// While a request is outstanding the form is disabled.
		if m.pending {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m = m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m = m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			return m.submit()
		case "ctrl+r":
			return m, navigate(screenRegister)
		}
	}

	if m.pending {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) setFocus(i int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()

	m.pending = true
	d := m.deps
	return m, func() tea.Msg {
		return loginDoneMsg{err: d.auth.Login(context.Background(), username, password)}
	}
}

func loginErrorText(err error) string {
	if text := humanize(err); text != "Not authorized" {
		return text
	}
	return "Invalid login or password"
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Setka — sign in"))
	b.WriteString("\n\n")
	b.WriteString("Username\n")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")
	if m.pending {
		b.WriteString(mutedStyle.Render("Signing in..."))
	} else {
		b.WriteString(mutedStyle.Render("enter: sign in · ctrl+r: register · ctrl+c: quit"))
	}
	return boxStyle.Render(b.String())
}
