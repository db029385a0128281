package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/setka-dev/setka/internal/client/models"
)

type section int

const (
	sectionFeed section = iota
	sectionProfile
	sectionFriends
	sectionCommunities
	sectionMessages
)

var sectionTitles = []string{"Feed", "Profile", "Friends", "Communities", "Messages"}

type threadLoadedMsg struct {
	msgs []models.Message
	err  error
}

type messageSentMsg struct {
	msg *models.Message
	err error
}

// homeModel renders the five sections of the original single-page layout.
// Feed, profile, friends and communities are local state only; the messages
// section talks to the chat function and keeps its local thread on failure.
type homeModel struct {
	deps    *deps
	section section

	posts       []models.Post
	cursor      int
	friends     []models.Friend
	communities []models.Community

	peerID       string
	peerName     string
	thread       []models.Message
	threadLoaded bool
	composer     textinput.Model
	loadPending  bool
	sendPending  bool

	postComposer textinput.Model
	composing    bool
}

func newHomeModel(d *deps) homeModel {
	composer := textinput.New()
	composer.Placeholder = "Write a message..."
	composer.CharLimit = 512

	postComposer := textinput.New()
	postComposer.Placeholder = "What's new?"
	postComposer.CharLimit = 512

	// The demo thread pairs the session user with the first seeded account
	// that is not the user themselves.
	peerID, peerName := "USER123", "Алексей Петров"
	if sess, ok := d.sessions.Current(); ok && sess.User.ID == peerID {
		peerID, peerName = "USER456", "Мария Иванова"
	}

	return homeModel{
		deps:         d,
		posts:        defaultPosts(),
		friends:      defaultFriends(),
		communities:  defaultCommunities(),
		peerID:       peerID,
		peerName:     peerName,
		thread:       defaultThread(peerID),
		composer:     composer,
		postComposer: postComposer,
	}
}

func (m homeModel) enter() homeModel { return m }

func (m homeModel) busy() bool { return m.loadPending || m.sendPending }

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case threadLoadedMsg:
		m.loadPending = false
		if msg.err != nil {
			// Keep whatever thread is already displayed; the next visit to
			// the section retries the fetch.
			return m, showNotice(noticeError, humanize(msg.err))
		}
		m.thread = msg.msgs
		m.threadLoaded = true
		return m, nil

	case messageSentMsg:
		m.sendPending = false
		if msg.err != nil {
			return m, showNotice(noticeError, humanize(msg.err))
		}
		m.thread = append(m.thread, *msg.msg)
		m.composer.SetValue("")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.composing {
		var cmd tea.Cmd
		m.postComposer, cmd = m.postComposer.Update(msg)
		return m, cmd
	}
	if m.section == sectionMessages {
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m homeModel) handleKey(msg tea.KeyMsg) (homeModel, tea.Cmd) {
	if m.composing {
		switch msg.String() {
		case "esc":
			m.composing = false
			m.postComposer.Blur()
			m.postComposer.SetValue("")
			return m, nil
		case "enter":
			return m.publishPost(), nil
		default:
			var cmd tea.Cmd
			m.postComposer, cmd = m.postComposer.Update(msg)
			return m, cmd
		}
	}

	if m.section == sectionMessages {
		switch msg.String() {
		case "esc":
			m.composer.Blur()
			m.section = sectionFeed
			return m, nil
		case "enter":
			return m.send()
		default:
			var cmd tea.Cmd
			m.composer, cmd = m.composer.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "1", "2", "3", "4", "5":
		return m.switchSection(section(msg.String()[0] - '1'))
	case "tab":
		return m.switchSection((m.section + 1) % section(len(sectionTitles)))
	case "ctrl+a":
		return m, navigate(screenAdmin)
	case "j", "down":
		if m.section == sectionFeed && m.cursor < len(m.posts)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.section == sectionFeed && m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "l", "enter":
		if m.section == sectionFeed && m.cursor < len(m.posts) {
			m.posts[m.cursor].Likes++
		}
		return m, nil
	case "c":
		if m.section == sectionFeed {
			m.composing = true
			m.postComposer.Focus()
			return m, textinputBlink
		}
		return m, nil
	}
	return m, nil
}

// publishPost puts a new post at the top of the feed. Like the original
// composer it is purely local state; the feed has no backing function.
func (m homeModel) publishPost() homeModel {
	content := strings.TrimSpace(m.postComposer.Value())
	if content == "" {
		return m
	}
	author := "You"
	if sess, ok := m.deps.sessions.Current(); ok {
		author = sess.User.FullName
	}
	post := models.Post{
		ID:        len(m.posts) + 1,
		Author:    author,
		Content:   content,
		Timestamp: "just now",
	}
	m.posts = append([]models.Post{post}, m.posts...)
	m.cursor = 0
	m.composing = false
	m.postComposer.Blur()
	m.postComposer.SetValue("")
	return m
}

func (m homeModel) switchSection(s section) (homeModel, tea.Cmd) {
	m.section = s
	if s != sectionMessages {
		m.composer.Blur()
		return m, nil
	}

	m.composer.Focus()
	if m.threadLoaded || m.loadPending {
		return m, textinputBlink
	}
	m.loadPending = true
	d, peer := m.deps, m.peerID
	return m, tea.Batch(textinputBlink, func() tea.Msg {
		msgs, err := d.chat.LoadThread(context.Background(), peer)
		return threadLoadedMsg{msgs: msgs, err: err}
	})
}

func (m homeModel) send() (homeModel, tea.Cmd) {
	content := strings.TrimSpace(m.composer.Value())
	if content == "" {
		return m, nil
	}
	if m.sendPending {
		return m, nil
	}
	m.sendPending = true
	d, peer := m.deps, m.peerID
	return m, func() tea.Msg {
		sent, err := d.chat.Send(context.Background(), peer, content)
		return messageSentMsg{msg: sent, err: err}
	}
}

func (m homeModel) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	switch m.section {
	case sectionFeed:
		b.WriteString(m.feedView())
	case sectionProfile:
		b.WriteString(m.profileView())
	case sectionFriends:
		b.WriteString(m.friendsView())
	case sectionCommunities:
		b.WriteString(m.communitiesView())
	case sectionMessages:
		b.WriteString(m.messagesView())
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(m.footer()))
	return b.String()
}

func (m homeModel) tabs() string {
	parts := make([]string, len(sectionTitles))
	for i, title := range sectionTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if section(i) == m.section {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (m homeModel) footer() string {
	help := "1-5: sections · ctrl+l: log out · ctrl+c: quit"
	if sess, ok := m.deps.sessions.Current(); ok && sess.User.IsAdmin {
		help += " · ctrl+a: admin panel"
	}
	if m.section == sectionMessages {
		help = "enter: send · esc: back · " + help
	}
	if m.section == sectionFeed {
		help = "c: new post · j/k: move · l: like · " + help
	}
	if m.composing {
		help = "enter: publish · esc: cancel"
	}
	return help
}

func (m homeModel) feedView() string {
	var b strings.Builder
	if m.composing {
		b.WriteString(m.postComposer.View() + "\n\n")
	}
	for i, post := range m.posts {
		marker := "  "
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, sectionTitleStyle.Render(post.Author), mutedStyle.Render(post.Timestamp)))
		b.WriteString("  " + post.Content + "\n")
		b.WriteString("  " + mutedStyle.Render(fmt.Sprintf("♥ %d   💬 %d", post.Likes, post.Comments)) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m homeModel) profileView() string {
	sess, ok := m.deps.sessions.Current()
	if !ok {
		return ""
	}
	u := sess.User
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(u.FullName) + "\n")
	b.WriteString(mutedStyle.Render("@"+u.Username) + "\n")
	b.WriteString(mutedStyle.Render("online · ID: "+u.ID) + "\n\n")
	b.WriteString("156 posts · 89 friends · 12 groups")
	return boxStyle.Render(b.String())
}

func (m homeModel) friendsView() string {
	var b strings.Builder
	for _, f := range m.friends {
		dot := offlineDot
		if f.IsOnline {
			dot = onlineDot
		}
		b.WriteString(fmt.Sprintf("%s %s — %s\n", dot, sectionTitleStyle.Render(f.Name), mutedStyle.Render(f.Status)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m homeModel) communitiesView() string {
	var b strings.Builder
	for _, c := range m.communities {
		b.WriteString(fmt.Sprintf("%s %s\n", sectionTitleStyle.Render(c.Name), mutedStyle.Render(fmt.Sprintf("(%d members)", c.Members))))
		b.WriteString("  " + c.Description + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m homeModel) messagesView() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render("Conversation with "+m.peerName) + "\n\n")
	for _, msg := range m.thread {
		// The thread is strictly between the session user and the peer.
		author := "You"
		if msg.SenderID == m.peerID {
			author = m.peerName
		}
		b.WriteString(fmt.Sprintf("%s %s\n", selectedStyle.Render(author+":"), msg.Content))
	}
	b.WriteString("\n" + m.composer.View())
	return b.String()
}

// Static collections from the original home page. Friends and communities
// are never mutated; the thread is the pre-load fallback for the messages
// section.
func defaultFriends() []models.Friend {
	return []models.Friend{
		{ID: 1, Name: "Алексей Петров", Avatar: "АП", Status: "online", IsOnline: true},
		{ID: 2, Name: "Мария Иванова", Avatar: "МИ", Status: "seen 5 min ago", IsOnline: false},
		{ID: 3, Name: "Дмитрий Козлов", Avatar: "ДК", Status: "online", IsOnline: true},
		{ID: 4, Name: "Анна Сидорова", Avatar: "АС", Status: "seen an hour ago", IsOnline: false},
	}
}

func defaultCommunities() []models.Community {
	return []models.Community{
		{ID: 1, Name: "Программисты", Members: 1250, Description: "Обсуждение технологий и кода"},
		{ID: 2, Name: "Фотография", Members: 856, Description: "Делимся снимками и техниками"},
		{ID: 3, Name: "Путешествия", Members: 2100, Description: "Советы и впечатления о поездках"},
	}
}

func defaultPosts() []models.Post {
	return []models.Post{
		{ID: 1, Author: "Алексей Петров", Avatar: "АП", Content: "Запустил новый проект на Go, полёт нормальный.", Likes: 12, Comments: 3, Timestamp: "2 hours ago"},
		{ID: 2, Author: "Мария Иванова", Avatar: "МИ", Content: "Кто-нибудь едет на митап в субботу?", Likes: 5, Comments: 8, Timestamp: "4 hours ago"},
		{ID: 3, Author: "Дмитрий Козлов", Avatar: "ДК", Content: "Фотографии из похода выложил в группу.", Likes: 27, Comments: 2, Timestamp: "yesterday"},
	}
}

func defaultThread(peerID string) []models.Message {
	return []models.Message{
		{ID: "1", SenderID: peerID, Content: "Привет! Как дела?", CreatedAt: "14:30", IsRead: true},
		{ID: "2", Content: "Привет! Всё отлично, спасибо!", CreatedAt: "14:32", IsRead: true},
		{ID: "3", SenderID: peerID, Content: "Увидимся завтра?", CreatedAt: "14:35", IsRead: false},
	}
}
