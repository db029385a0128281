package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// noticeTTL is how long a transient notice stays on the status line, the
// toast duration of the original UI.
const noticeTTL = 4 * time.Second

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeError
)

type notice struct {
	level noticeLevel
	text  string
}

func (n notice) render() string {
	switch n.level {
	case noticeSuccess:
		return successStyle.Render(n.text)
	case noticeError:
		return errorStyle.Render(n.text)
	default:
		return mutedStyle.Render(n.text)
	}
}

type noticeMsg struct {
	level noticeLevel
	text  string
}

type noticeExpiredMsg struct{ seq int }

func showNotice(level noticeLevel, text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{level: level, text: text} }
}

type navigateMsg struct{ to screen }

func navigate(to screen) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

var textinputBlink = textinput.Blink
