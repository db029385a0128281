// Package ui implements the terminal interface: login and registration
// screens, the home screen with its sections, and the admin panel. It is a
// single bubbletea program; remote calls run as tea commands so the event
// loop never blocks.
package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/setka-dev/setka/internal/client/services"
	"github.com/setka-dev/setka/internal/client/session"
	"github.com/setka-dev/setka/internal/common"
	"github.com/setka-dev/setka/internal/logging"
)

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenHome
	screenAdmin
)

// deps bundles everything the screens need. Injected once at construction:
// no package-level state (see session package for the durable part).
type deps struct {
	log      logging.Logger
	sessions *session.Store
	auth     *services.AuthService
	admin    *services.AdminService
	chat     *services.ChatService
}

// App is the root model. It owns screen routing, the authorization gate, the
// transient notice line and the busy spinner; everything else lives in the
// per-screen models.
type App struct {
	deps *deps

	active   screen
	login    loginModel
	register registerModel
	home     homeModel
	adminUI  adminModel

	notice    notice
	noticeSeq int
	spinner   spinner.Model
	width     int
	height    int
}

func NewApp(log logging.Logger, sessions *session.Store, auth *services.AuthService, admin *services.AdminService, chat *services.ChatService) App {
	d := &deps{log: log, sessions: sessions, auth: auth, admin: admin, chat: chat}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	a := App{
		deps:     d,
		login:    newLoginModel(d),
		register: newRegisterModel(d),
		home:     newHomeModel(d),
		adminUI:  newAdminModel(d),
		spinner:  sp,
	}
	// A restored session goes straight to the home screen.
	a.active = a.gate(screenHome)
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(textinputBlink, a.spinner.Tick)
}

// gate applies the authorization gate before a screen may render: protected
// screens require a session, the admin screen additionally requires the
// admin role. Failures are silent redirects to the login screen so protected
// content never flashes.
func (a App) gate(target screen) screen {
	switch target {
	case screenLogin, screenRegister:
		return target
	case screenAdmin:
		sess, ok := a.deps.sessions.Current()
		if !ok || !sess.User.IsAdmin {
			return screenLogin
		}
	default:
		if _, ok := a.deps.sessions.Current(); !ok {
			return screenLogin
		}
	}
	return target
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+l":
			if a.active == screenHome || a.active == screenAdmin {
				return a.logout()
			}
		}

	case navigateMsg:
		return a.navigate(msg.to)

	case noticeMsg:
		a.notice = notice{level: msg.level, text: msg.text}
		a.noticeSeq++
		seq := a.noticeSeq
		return a, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		})

	case noticeExpiredMsg:
		if msg.seq == a.noticeSeq {
			a.notice = notice{}
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a.updateActive(msg)
}

func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case screenLogin:
		a.login, cmd = a.login.Update(msg)
	case screenRegister:
		a.register, cmd = a.register.Update(msg)
	case screenHome:
		a.home, cmd = a.home.Update(msg)
	case screenAdmin:
		a.adminUI, cmd = a.adminUI.Update(msg)
	}
	return a, cmd
}

// navigate routes to a screen through the gate. Screens with mount work
// (the admin list fetch) get their command here and only here, so a denied
// navigation can never issue an admin data request.
func (a App) navigate(to screen) (tea.Model, tea.Cmd) {
	granted := a.gate(to)
	a.active = granted
	if granted != to {
		a.deps.log.Info(context.Background(), "navigation redirected to login", "wanted", int(to))
		return a, nil
	}

	var cmd tea.Cmd
	switch granted {
	case screenAdmin:
		a.adminUI, cmd = a.adminUI.enter()
	case screenHome:
		a.home = a.home.enter()
	case screenLogin:
		a.login = newLoginModel(a.deps)
	case screenRegister:
		a.register = newRegisterModel(a.deps)
	}
	return a, cmd
}

// logout drops the session and tears down every protected screen before the
// next render.
func (a App) logout() (tea.Model, tea.Cmd) {
	a.deps.auth.Logout(context.Background())
	a.home = newHomeModel(a.deps)
	a.adminUI = newAdminModel(a.deps)
	a.login = newLoginModel(a.deps)
	a.active = screenLogin
	return a, showNotice(noticeInfo, "Logged out")
}

func (a App) View() string {
	var body string
	switch a.active {
	case screenLogin:
		body = a.login.View()
	case screenRegister:
		body = a.register.View()
	case screenHome:
		body = a.home.View()
	case screenAdmin:
		body = a.adminUI.View()
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(a.statusLine())
	return b.String()
}

func (a App) statusLine() string {
	var parts []string
	if a.busy() {
		parts = append(parts, a.spinner.View())
	}
	if a.notice.text != "" {
		parts = append(parts, a.notice.render())
	}
	if len(parts) == 0 {
		return " "
	}
	return strings.Join(parts, " ")
}

func (a App) busy() bool {
	switch a.active {
	case screenLogin:
		return a.login.pending
	case screenRegister:
		return a.register.pending
	case screenHome:
		return a.home.busy()
	case screenAdmin:
		return a.adminUI.busy()
	}
	return false
}

// humanize maps service errors onto the short transient notices the user
// sees. No status codes or server details leak through; those go to the log.
func humanize(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")
	case errors.Is(err, common.ErrUnauthorized):
		return "Not authorized"
	case errors.Is(err, common.ErrUnavailable):
		return "Server unavailable"
	default:
		return "Request failed"
	}
}
