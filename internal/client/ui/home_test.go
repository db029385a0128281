package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/setka-dev/setka/internal/client/models"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMessagesSectionLoadsThreadOnce(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, false)
	f.client.GetMessagesRet = []models.Message{{ID: "A", SenderID: "USER123", Content: "привет"}}
	m := newHomeModel(f.deps)

	m, cmd := m.switchSection(sectionMessages)
	require.True(t, m.busy())
	for _, msg := range run(cmd) {
		m, _ = m.Update(msg)
	}
	require.False(t, m.busy())
	require.Len(t, m.thread, 1)

	// Switching away and back does not refetch.
	m, _ = m.switchSection(sectionFeed)
	m, cmd = m.switchSection(sectionMessages)
	run(cmd)
	require.Len(t, m.thread, 1)
}

func TestThreadLoadFailureKeepsFallback(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, false)
	f.client.GetMessagesRet = nil
	m := newHomeModel(f.deps)
	fallback := len(m.thread)
	require.NotZero(t, fallback)

	m, _ = m.Update(threadLoadedMsg{err: errBoom})
	require.Len(t, m.thread, fallback)
}

func TestThreadLoadFailureRetriedOnRevisit(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, false)
	f.client.GetMessagesErr = errBoom
	m := newHomeModel(f.deps)

	m, cmd := m.switchSection(sectionMessages)
	for _, msg := range run(cmd) {
		if loaded, ok := msg.(threadLoadedMsg); ok {
			m, _ = m.Update(loaded)
		}
	}
	require.False(t, m.threadLoaded)

	// The next visit refetches, and this time it sticks.
	f.client.GetMessagesErr = nil
	f.client.GetMessagesRet = []models.Message{{ID: "A"}}
	m, _ = m.switchSection(sectionFeed)
	m, cmd = m.switchSection(sectionMessages)
	for _, msg := range run(cmd) {
		if loaded, ok := msg.(threadLoadedMsg); ok {
			m, _ = m.Update(loaded)
		}
	}
	require.True(t, m.threadLoaded)
	require.Len(t, m.thread, 1)
}

func TestDemoPeerIsNeverTheSessionUser(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, false) // alex_petrov, USER123
	m := newHomeModel(f.deps)
	require.Equal(t, "USER456", m.peerID)
	require.Equal(t, "Мария Иванова", m.peerName)
	for _, msg := range m.thread {
		require.NotEqual(t, "USER123", msg.SenderID)
	}

	fa := newFixture(t)
	fa.signIn(t, true) // the admin account
	ma := newHomeModel(fa.deps)
	require.Equal(t, "USER123", ma.peerID)
	require.Equal(t, "Алексей Петров", ma.peerName)
}

func TestSendAppendsServerMessage(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, false)
	f.client.SendMessageRet = &models.Message{ID: "NEW", Content: "пока"}
	m := newHomeModel(f.deps)
	m.section = sectionMessages
	before := len(m.thread)

	m.composer.SetValue("пока")
	m, cmd := m.send()
	require.True(t, m.sendPending)
	for _, msg := range run(cmd) {
		m, _ = m.Update(msg)
	}
	require.Len(t, m.thread, before+1)
	require.Equal(t, "NEW", m.thread[len(m.thread)-1].ID)
	require.Empty(t, m.composer.Value())
}

func TestFeedComposerPublishesLocalPost(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, false)
	m := newHomeModel(f.deps)
	before := len(m.posts)

	m, _ = m.handleKey(key("c"))
	require.True(t, m.composing)

	m.postComposer.SetValue("Новый пост")
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	require.False(t, m.composing)
	require.Len(t, m.posts, before+1)
	require.Equal(t, "Новый пост", m.posts[0].Content)
	require.Equal(t, "Алексей Петров", m.posts[0].Author)
	require.Zero(t, m.cursor)
}

func TestFeedComposerEscCancels(t *testing.T) {
	f := newFixture(t)
	f.signIn(t, false)
	m := newHomeModel(f.deps)
	before := len(m.posts)

	m, _ = m.handleKey(key("c"))
	m.postComposer.SetValue("черновик")
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})

	require.False(t, m.composing)
	require.Len(t, m.posts, before)
	require.Empty(t, m.postComposer.Value())
}
