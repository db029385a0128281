package ui

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/setka-dev/setka/internal/client/models"
)

func sampleUsers() []models.User {
	return []models.User{
		{ID: "USER123", Username: "alex_petrov", FullName: "Алексей Петров", IsOnline: true},
		{ID: "USER456", Username: "maria_ivanova", FullName: "Мария Иванова"},
		{ID: "USER789", Username: "spammer", FullName: "Спам Бот", IsBanned: true},
	}
}

func adminFixture(t *testing.T) (*fixture, adminModel) {
	t.Helper()
	f := newFixture(t)
	f.signIn(t, true)
	f.client.GetUsersRet = sampleUsers()

	m := newAdminModel(f.deps)
	m, cmd := m.enter()
	for _, msg := range run(cmd) {
		m, _ = m.Update(msg)
	}
	return f, m
}

func TestAdminEnterLoadsUsers(t *testing.T) {
	f, m := adminFixture(t)
	require.Equal(t, 1, f.client.GetUsersCalls)
	require.Len(t, m.users, 3)
	require.Len(t, m.bannable(), 2)
	require.Len(t, m.banned(), 1)
	require.False(t, m.busy())
}

func TestStaleUsersReplyDropped(t *testing.T) {
	_, m := adminFixture(t)

	m, _ = m.startList()
	require.True(t, m.busy())

	// A completion from a superseded request changes nothing.
	m, _ = m.Update(usersLoadedMsg{id: uuid.New(), users: nil})
	require.Len(t, m.users, 3)
	require.True(t, m.busy())

	// The current one lands.
	m, _ = m.Update(usersLoadedMsg{id: m.pending[opList], users: sampleUsers()[:1]})
	require.Len(t, m.users, 1)
	require.False(t, m.busy())
}

func TestBanSuccessClearsFormAndRelistsOnce(t *testing.T) {
	f, m := adminFixture(t)
	calls := f.client.GetUsersCalls

	m.reason.SetValue("спам")
	m.targetCursor = 1
	m, cmd := m.startBan()

	var done banDoneMsg
	for _, msg := range run(cmd) {
		done = msg.(banDoneMsg)
	}
	require.Equal(t, 1, f.client.BanCalls)
	require.Equal(t, "USER456", f.client.LastBanTarget)
	require.Equal(t, "спам", f.client.LastBanReason)

	m, cmd = m.Update(done)
	require.Empty(t, m.reason.Value())
	require.Zero(t, m.targetCursor)

	for _, msg := range run(cmd) {
		if loaded, ok := msg.(usersLoadedMsg); ok {
			m, _ = m.Update(loaded)
		}
	}
	require.Equal(t, calls+1, f.client.GetUsersCalls)
	require.False(t, m.busy())
}

func TestBanWithoutReasonSkipsNetwork(t *testing.T) {
	f, m := adminFixture(t)

	m, cmd := m.startBan()
	msgs := run(cmd)

	require.Zero(t, f.client.BanCalls)
	require.False(t, m.busy())
	require.Len(t, msgs, 1)
	notice, ok := msgs[0].(noticeMsg)
	require.True(t, ok)
	require.Equal(t, noticeError, notice.level)
}

func TestBanFailureKeepsForm(t *testing.T) {
	f, m := adminFixture(t)
	f.client.BanErr = errBoom

	m.reason.SetValue("flood")
	m, cmd := m.startBan()
	var done banDoneMsg
	for _, msg := range run(cmd) {
		done = msg.(banDoneMsg)
	}

	m, cmd = m.Update(done)
	require.Equal(t, "flood", m.reason.Value())
	for _, msg := range run(cmd) {
		_, isNotice := msg.(noticeMsg)
		require.True(t, isNotice)
	}
	// No reconciliation listing on failure.
	require.Equal(t, 1, f.client.GetUsersCalls)
}

func TestUnbanUsesSelectedBannedUser(t *testing.T) {
	f, m := adminFixture(t)
	m.focus = focusBanned

	m, cmd := m.startUnban()
	for _, msg := range run(cmd) {
		if done, ok := msg.(unbanDoneMsg); ok {
			m, _ = m.Update(done)
		}
	}
	require.Equal(t, 1, f.client.UnbanCalls)
	require.Equal(t, "USER789", f.client.LastUnbanTarget)
}

func TestConversationFailureKeepsStaleData(t *testing.T) {
	f, m := adminFixture(t)
	stale := []models.Message{{ID: "MSG1", Content: "старое"}}
	m.conversation = stale
	f.client.ReadMessagesErr = errBoom

	m.user1.SetValue("USER123")
	m.user2.SetValue("USER456")
	m, cmd := m.startRead()
	for _, msg := range run(cmd) {
		if conv, ok := msg.(conversationMsg); ok {
			m, _ = m.Update(conv)
		}
	}
	require.Equal(t, stale, m.conversation)
	require.False(t, m.busy())
}

func TestConversationSuccessReplacesData(t *testing.T) {
	f, m := adminFixture(t)
	m.conversation = []models.Message{{ID: "MSG1"}}
	f.client.ReadMessagesRet = []models.Message{{ID: "MSG2"}, {ID: "MSG3"}}

	m.user1.SetValue("USER123")
	m.user2.SetValue("USER456")
	m, cmd := m.startRead()
	for _, msg := range run(cmd) {
		if conv, ok := msg.(conversationMsg); ok {
			m, _ = m.Update(conv)
		}
	}
	require.Len(t, m.conversation, 2)
	require.Equal(t, "MSG2", m.conversation[0].ID)
}

func TestBanDuringPendingListStillReconciles(t *testing.T) {
	f, m := adminFixture(t)

	// A manual refresh is in flight when the ban completes.
	m, heldCmd := m.startList()
	require.True(t, m.busy())

	m.reason.SetValue("спам")
	m, cmd := m.startBan()
	var done banDoneMsg
	for _, msg := range run(cmd) {
		done = msg.(banDoneMsg)
	}
	m, cmd = m.Update(done)

	// The reconciliation listing goes out even though one was pending, and
	// its reply is the one that lands.
	f.client.GetUsersRet = sampleUsers()[:1]
	for _, msg := range run(cmd) {
		if loaded, ok := msg.(usersLoadedMsg); ok {
			m, _ = m.Update(loaded)
		}
	}
	require.Equal(t, 2, f.client.GetUsersCalls)
	require.Len(t, m.users, 1)
	require.False(t, m.busy())

	// The pre-ban reply arrives last and is dropped: it was superseded.
	f.client.GetUsersRet = sampleUsers()
	for _, msg := range run(heldCmd) {
		m, _ = m.Update(msg)
	}
	require.Equal(t, 3, f.client.GetUsersCalls)
	require.Len(t, m.users, 1)
}

func TestDuplicateListRequestNotIssued(t *testing.T) {
	_, m := adminFixture(t)

	m, cmd := m.startList()
	require.NotNil(t, cmd)
	_, again := m.startList()
	require.Nil(t, again)
}
