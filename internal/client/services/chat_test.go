package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/setka-dev/setka/internal/client/models"
	"github.com/setka-dev/setka/internal/client/session"
	"github.com/setka-dev/setka/internal/common"
)

func chatFixture(t *testing.T, fc *fakeClient) *ChatService {
	t.Helper()
	sessions := testSessions(t)
	err := sessions.Set(context.Background(), session.Session{
		Token: "T",
		User:  models.User{ID: "USERME", Username: "me"},
	})
	require.NoError(t, err)
	return NewChatService(fc, sessions, testLogger())
}

func TestSendUsesSessionIdentityAsSender(t *testing.T) {
	fc := &fakeClient{SendMessageRet: &models.Message{ID: "10", Content: "hello"}}
	svc := chatFixture(t, fc)

	msg, err := svc.Send(context.Background(), "USER123", "hello")
	require.NoError(t, err)
	require.Equal(t, "10", msg.ID)
	require.Equal(t, "USERME", fc.LastSendSender)
	require.Equal(t, "USER123", fc.LastSendReceiver)
}

func TestSendRejectsEmptyContent(t *testing.T) {
	fc := &fakeClient{}
	svc := chatFixture(t, fc)

	_, err := svc.Send(context.Background(), "USER123", "   ")
	require.ErrorIs(t, err, common.ErrValidation)
	require.Empty(t, fc.LastSendReceiver)
}

func TestChatRequiresSession(t *testing.T) {
	svc := NewChatService(&fakeClient{}, testSessions(t), testLogger())

	_, err := svc.Send(context.Background(), "USER123", "hi")
	require.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = svc.LoadThread(context.Background(), "USER123")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLoadThread(t *testing.T) {
	fc := &fakeClient{GetMessagesRet: []models.Message{{ID: "1"}, {ID: "2"}}}
	svc := chatFixture(t, fc)

	msgs, err := svc.LoadThread(context.Background(), "USER123")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, 1, fc.MarkReadCalls)
}

func TestLoadThreadMarkReadIsBestEffort(t *testing.T) {
	fc := &fakeClient{
		GetMessagesRet: []models.Message{{ID: "1"}},
		MarkReadErr:    common.ErrUnavailable,
	}
	svc := chatFixture(t, fc)

	msgs, err := svc.LoadThread(context.Background(), "USER123")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
}

func TestLoadThreadFailureSkipsMarkRead(t *testing.T) {
	fc := &fakeClient{GetMessagesErr: common.ErrUnavailable}
	svc := chatFixture(t, fc)

	_, err := svc.LoadThread(context.Background(), "USER123")
	require.ErrorIs(t, err, common.ErrUnavailable)
	require.Zero(t, fc.MarkReadCalls)
}
