package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/setka-dev/setka/internal/client/services"
)

type registerDoneMsg struct{ err error }

// Field order mirrors the registration form of the original page.
const (
	regUsername = iota
	regEmail
	regFullName
	regPassword
	regConfirm
	regBio
	regFieldCount
)

type registerModel struct {
	deps    *deps
	inputs  [regFieldCount]textinput.Model
	focus   int
	pending bool
}

func newRegisterModel(d *deps) registerModel {
	labels := [regFieldCount]string{"username", "email", "full name", "password", "confirm password", "bio (optional)"}

	var inputs [regFieldCount]textinput.Model
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 128
		inputs[i] = ti
	}
	inputs[regPassword].EchoMode = textinput.EchoPassword
	inputs[regPassword].EchoCharacter = '•'
	inputs[regConfirm].EchoMode = textinput.EchoPassword
	inputs[regConfirm].EchoCharacter = '•'
	inputs[regUsername].Focus()

	return registerModel{deps: d, inputs: inputs}
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.pending = false
		if msg.err != nil {
			return m, showNotice(noticeError, humanize(msg.err))
		}
		return m, tea.Batch(navigate(screenHome), showNotice(noticeSuccess, "Registration successful. Welcome!"))

	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m = m.setFocus((m.focus + 1) % regFieldCount)
			return m, nil
		case "shift+tab", "up":
			m = m.setFocus((m.focus + regFieldCount - 1) % regFieldCount)
			return m, nil
		case "enter":
			return m.submit()
		case "esc":
			return m, navigate(screenLogin)
		}
	}

	if m.pending {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m registerModel) setFocus(i int) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	form := services.RegisterForm{
		Username:        strings.TrimSpace(m.inputs[regUsername].Value()),
		Email:           strings.TrimSpace(m.inputs[regEmail].Value()),
		FullName:        strings.TrimSpace(m.inputs[regFullName].Value()),
		Password:        m.inputs[regPassword].Value(),
		ConfirmPassword: m.inputs[regConfirm].Value(),
		Bio:             m.inputs[regBio].Value(),
	}

	m.pending = true
	d := m.deps
	return m, func() tea.Msg {
		return registerDoneMsg{err: d.auth.Register(context.Background(), form)}
	}
}

func (m registerModel) View() string {
	labels := [regFieldCount]string{"Username *", "Email *", "Full name *", "Password *", "Confirm password *", "About you"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Setka — create an account"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.pending {
		b.WriteString(mutedStyle.Render("Registering..."))
	} else {
		b.WriteString(mutedStyle.Render("enter: register · esc: back to sign in"))
	}
	return boxStyle.Render(b.String())
}
