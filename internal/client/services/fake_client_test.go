package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/setka-dev/setka/internal/client/api"
	"github.com/setka-dev/setka/internal/client/models"
	"github.com/setka-dev/setka/internal/client/session"
	"github.com/setka-dev/setka/internal/logging"
)

// fakeClient implements api.Client for unit tests. Behaviour is configured
// through the *Ret/*Err fields; the Last*/Calls fields record what the
// service actually asked for.
type fakeClient struct {
	LoginRet *api.AuthResult
	LoginErr error

	RegisterRet *api.AuthResult
	RegisterErr error

	VerifyRet *models.User
	VerifyErr error

	GetUsersRet   []models.User
	GetUsersErr   error
	GetUsersCalls int

	BanErr   error
	BanCalls int

	UnbanErr   error
	UnbanCalls int

	ReadMessagesRet []models.Message
	ReadMessagesErr error
	ReadCalls       int

	GetMessagesRet []models.Message
	GetMessagesErr error

	SendMessageRet *models.Message
	SendMessageErr error

	MarkReadErr   error
	MarkReadCalls int

	LastLoginUser    string
	LastRegister     api.RegisterRequest
	LastToken        string
	LastBanTarget    string
	LastBanReason    string
	LastUnbanTarget  string
	LastReadUser1    string
	LastReadUser2    string
	LastSendSender   string
	LastSendReceiver string
	LastSendContent  string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, username, password string) (*api.AuthResult, error) {
	f.LastLoginUser = username
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error) {
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Verify(ctx context.Context, token string) (*models.User, error) {
	f.LastToken = token
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) GetUsers(ctx context.Context, adminToken string) ([]models.User, error) {
	f.GetUsersCalls++
	f.LastToken = adminToken
	return f.GetUsersRet, f.GetUsersErr
}

func (f *fakeClient) BanUser(ctx context.Context, adminToken, targetUserID, reason string) error {
	f.BanCalls++
	f.LastToken = adminToken
	f.LastBanTarget = targetUserID
	f.LastBanReason = reason
	return f.BanErr
}

func (f *fakeClient) UnbanUser(ctx context.Context, adminToken, targetUserID string) error {
	f.UnbanCalls++
	f.LastToken = adminToken
	f.LastUnbanTarget = targetUserID
	return f.UnbanErr
}

func (f *fakeClient) ReadMessages(ctx context.Context, adminToken, user1ID, user2ID string) ([]models.Message, error) {
	f.ReadCalls++
	f.LastToken = adminToken
	f.LastReadUser1 = user1ID
	f.LastReadUser2 = user2ID
	return f.ReadMessagesRet, f.ReadMessagesErr
}

func (f *fakeClient) GetMessages(ctx context.Context, user1ID, user2ID string, limit int) ([]models.Message, error) {
	return f.GetMessagesRet, f.GetMessagesErr
}

func (f *fakeClient) SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	f.LastSendSender = senderID
	f.LastSendReceiver = receiverID
	f.LastSendContent = content
	return f.SendMessageRet, f.SendMessageErr
}

func (f *fakeClient) MarkRead(ctx context.Context, readerID, senderID string) error {
	f.MarkReadCalls++
	return f.MarkReadErr
}

// ---- shared helpers ----

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelInfo)
}

func testSessions(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"), testLogger())
}
