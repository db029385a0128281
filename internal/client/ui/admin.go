package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/setka-dev/setka/internal/client/models"
)

// opKind identifies one of the four moderation operations. Pending state is
// tracked per kind, not with a single shared busy flag, so unrelated
// operations never serialize each other and a late reply cannot clobber a
// newer one: every request carries an id and a completion message is dropped
// unless it matches the latest id issued for its kind.
type opKind int

const (
	opList opKind = iota
	opBan
	opUnban
	opRead
)

type usersLoadedMsg struct {
	id    uuid.UUID
	users []models.User
	err   error
}

type banDoneMsg struct {
	id  uuid.UUID
	err error
}

type unbanDoneMsg struct {
	id     uuid.UUID
	target string
	err    error
}

type conversationMsg struct {
	id   uuid.UUID
	msgs []models.Message
	err  error
}

type adminFocus int

const (
	focusTarget adminFocus = iota
	focusReason
	focusBanned
	focusUser1
	focusUser2
)

// adminModel is the moderation panel: ban form, banned list with per-row
// unban, conversation inspector and the full user grid. The local user list
// is replaced wholesale after every successful mutation by re-running the
// listing (pull-based reconciliation).
type adminModel struct {
	deps *deps

	users        []models.User
	conversation []models.Message

	focus        adminFocus
	targetCursor int
	bannedCursor int
	reason       textinput.Model
	user1        textinput.Model
	user2        textinput.Model

	pending map[opKind]uuid.UUID
}

func newAdminModel(d *deps) adminModel {
	reason := textinput.New()
	reason.Placeholder = "ban reason"
	reason.CharLimit = 256

	user1 := textinput.New()
	user1.Placeholder = "USER123"
	user1.CharLimit = 64

	user2 := textinput.New()
	user2.Placeholder = "USER456"
	user2.CharLimit = 64

	return adminModel{
		deps:    d,
		reason:  reason,
		user1:   user1,
		user2:   user2,
		pending: make(map[opKind]uuid.UUID),
	}
}

// enter is invoked when the (already gated) navigation lands on the admin
// screen; it kicks off the initial listing.
func (m adminModel) enter() (adminModel, tea.Cmd) {
	return m.startList()
}

func (m adminModel) busy() bool { return len(m.pending) > 0 }

// start registers a fresh request id for kind; finish reports whether a
// completion is current, dropping stale replies from superseded requests.
func (m adminModel) start(kind opKind) uuid.UUID {
	id := uuid.New()
	m.pending[kind] = id
	return id
}

func (m adminModel) finish(kind opKind, id uuid.UUID) bool {
	cur, ok := m.pending[kind]
	if !ok || cur != id {
		return false
	}
	delete(m.pending, kind)
	return true
}

func (m adminModel) startList() (adminModel, tea.Cmd) {
	if _, ok := m.pending[opList]; ok {
		return m, nil
	}
	return m.forceList()
}

// forceList issues a fresh listing even when one is already pending. The new
// request id supersedes the old one, so a reply to the earlier request is
// dropped on arrival. Post-mutation reconciliation must use this: a listing
// issued before the mutation would otherwise be accepted as the final state.
func (m adminModel) forceList() (adminModel, tea.Cmd) {
	id := m.start(opList)
	d := m.deps
	return m, func() tea.Msg {
		users, err := d.admin.ListUsers(context.Background())
		return usersLoadedMsg{id: id, users: users, err: err}
	}
}

func (m adminModel) Update(msg tea.Msg) (adminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		if !m.finish(opList, msg.id) {
			return m, nil
		}
		if msg.err != nil {
			return m, showNotice(noticeError, humanize(msg.err))
		}
		m.users = msg.users
		m.clampCursors()
		return m, nil

	case banDoneMsg:
		if !m.finish(opBan, msg.id) {
			return m, nil
		}
		if msg.err != nil {
			return m, showNotice(noticeError, humanize(msg.err))
		}
		// Success clears the form and re-queries the listing exactly once.
		m.reason.SetValue("")
		m.targetCursor = 0
		var cmd tea.Cmd
		m, cmd = m.forceList()
		return m, tea.Batch(showNotice(noticeSuccess, "User banned"), cmd)

	case unbanDoneMsg:
		if !m.finish(opUnban, msg.id) {
			return m, nil
		}
		if msg.err != nil {
			return m, showNotice(noticeError, humanize(msg.err))
		}
		var cmd tea.Cmd
		m, cmd = m.forceList()
		return m, tea.Batch(showNotice(noticeSuccess, "User unbanned"), cmd)

	case conversationMsg:
		if !m.finish(opRead, msg.id) {
			return m, nil
		}
		if msg.err != nil {
			// The previously displayed conversation stays as it is.
			return m, showNotice(noticeError, humanize(msg.err))
		}
		m.conversation = msg.msgs
		return m, tea.Batch(showNotice(noticeSuccess, "Conversation loaded"))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m adminModel) handleKey(msg tea.KeyMsg) (adminModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, navigate(screenHome)
	case "tab":
		return m.setFocus((m.focus + 1) % 5), nil
	case "shift+tab":
		return m.setFocus((m.focus + 4) % 5), nil
	case "ctrl+r":
		return m.startList()
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	case "enter":
		return m.submit()
	}
	return m.updateInputs(msg)
}

func (m adminModel) setFocus(f adminFocus) adminModel {
	m.reason.Blur()
	m.user1.Blur()
	m.user2.Blur()
	m.focus = f
	switch f {
	case focusReason:
		m.reason.Focus()
	case focusUser1:
		m.user1.Focus()
	case focusUser2:
		m.user2.Focus()
	}
	return m
}

func (m *adminModel) moveCursor(delta int) {
	switch m.focus {
	case focusTarget:
		m.targetCursor = clamp(m.targetCursor+delta, 0, len(m.bannable())-1)
	case focusBanned:
		m.bannedCursor = clamp(m.bannedCursor+delta, 0, len(m.banned())-1)
	}
}

func (m *adminModel) clampCursors() {
	m.targetCursor = clamp(m.targetCursor, 0, len(m.bannable())-1)
	m.bannedCursor = clamp(m.bannedCursor, 0, len(m.banned())-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m adminModel) updateInputs(msg tea.Msg) (adminModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusReason:
		m.reason, cmd = m.reason.Update(msg)
	case focusUser1:
		m.user1, cmd = m.user1.Update(msg)
	case focusUser2:
		m.user2, cmd = m.user2.Update(msg)
	}
	return m, cmd
}

// bannable lists users available as ban targets, banned the ones shown with
// an unban action, mirroring the two lists of the original panel.
func (m adminModel) bannable() []models.User {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		if !u.IsBanned {
			out = append(out, u)
		}
	}
	return out
}

func (m adminModel) banned() []models.User {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		if u.IsBanned {
			out = append(out, u)
		}
	}
	return out
}

func (m adminModel) submit() (adminModel, tea.Cmd) {
	switch m.focus {
	case focusTarget, focusReason:
		return m.startBan()
	case focusBanned:
		return m.startUnban()
	case focusUser1, focusUser2:
		return m.startRead()
	}
	return m, nil
}

func (m adminModel) startBan() (adminModel, tea.Cmd) {
	if _, ok := m.pending[opBan]; ok {
		return m, nil
	}

	var target string
	if bannable := m.bannable(); m.targetCursor < len(bannable) {
		target = bannable[m.targetCursor].ID
	}
	reason := strings.TrimSpace(m.reason.Value())
	if target == "" || reason == "" {
		// Rejected locally; no request goes out.
		return m, showNotice(noticeError, "Select a user and give a reason")
	}

	id := m.start(opBan)
	d := m.deps
	return m, func() tea.Msg {
		return banDoneMsg{id: id, err: d.admin.BanUser(context.Background(), target, reason)}
	}
}

func (m adminModel) startUnban() (adminModel, tea.Cmd) {
	if _, ok := m.pending[opUnban]; ok {
		return m, nil
	}

	banned := m.banned()
	if m.bannedCursor >= len(banned) {
		return m, nil
	}
	target := banned[m.bannedCursor].ID

	id := m.start(opUnban)
	d := m.deps
	return m, func() tea.Msg {
		return unbanDoneMsg{id: id, target: target, err: d.admin.UnbanUser(context.Background(), target)}
	}
}

func (m adminModel) startRead() (adminModel, tea.Cmd) {
	if _, ok := m.pending[opRead]; ok {
		return m, nil
	}

	user1 := strings.TrimSpace(m.user1.Value())
	user2 := strings.TrimSpace(m.user2.Value())
	if user1 == "" || user2 == "" {
		return m, showNotice(noticeError, "Both user ids are required")
	}

	id := m.start(opRead)
	d := m.deps
	return m, func() tea.Msg {
		msgs, err := d.admin.ReadConversation(context.Background(), user1, user2)
		return conversationMsg{id: id, msgs: msgs, err: err}
	}
}

func (m adminModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Admin panel"))
	if sess, ok := m.deps.sessions.Current(); ok {
		b.WriteString(mutedStyle.Render("  signed in as " + sess.User.FullName))
	}
	b.WriteString("\n\n")

	b.WriteString(m.banFormView())
	b.WriteString("\n")
	b.WriteString(m.bannedView())
	b.WriteString("\n")
	b.WriteString(m.conversationView())
	b.WriteString("\n")
	b.WriteString(m.userGridView())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab: next control · enter: run · ctrl+r: refresh · esc: back · ctrl+l: log out"))
	return b.String()
}

func (m adminModel) banFormView() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Ban a user") + "\n")

	bannable := m.bannable()
	if len(bannable) == 0 {
		b.WriteString(mutedStyle.Render("(no users)") + "\n")
	}
	for i, u := range bannable {
		line := fmt.Sprintf("%s (%s)", u.Username, u.FullName)
		if i == m.targetCursor && m.focus == focusTarget {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("Reason: " + m.reason.View())
	return boxStyle.Render(b.String())
}

func (m adminModel) bannedView() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Banned users") + "\n")

	banned := m.banned()
	if len(banned) == 0 {
		b.WriteString(mutedStyle.Render("(none)"))
	}
	for i, u := range banned {
		line := u.Username + "  [enter: unban]"
		if i == m.bannedCursor && m.focus == focusBanned {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m adminModel) conversationView() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Read a conversation") + "\n")
	b.WriteString("User 1: " + m.user1.View() + "\n")
	b.WriteString("User 2: " + m.user2.View() + "\n")
	for _, msg := range m.conversation {
		b.WriteString(fmt.Sprintf("%s → %s: %s %s\n",
			msg.SenderID, msg.ReceiverID, msg.Content, mutedStyle.Render(msg.CreatedAt)))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m adminModel) userGridView() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("All users") + "\n")
	for _, u := range m.users {
		dot := offlineDot
		if u.IsOnline {
			dot = onlineDot
		}
		line := fmt.Sprintf("%s %s · %s · %s", dot, u.Username, u.ID, u.Email)
		if u.IsBanned {
			line += " " + bannedStyle.Render("[banned]")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
