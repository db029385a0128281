package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/setka-dev/setka/internal/client/api"
	"github.com/setka-dev/setka/internal/client/models"
	"github.com/setka-dev/setka/internal/client/services"
	"github.com/setka-dev/setka/internal/client/session"
	"github.com/setka-dev/setka/internal/logging"
)

var errBoom = errors.New("boom")

// fakeClient implements api.Client for screen-level tests. Only the calls the
// screens make are observable; configure results via the *Ret/*Err fields.
type fakeClient struct {
	LoginRet *api.AuthResult
	LoginErr error

	GetUsersRet   []models.User
	GetUsersErr   error
	GetUsersCalls int

	BanErr   error
	BanCalls int

	UnbanErr        error
	UnbanCalls      int
	LastUnbanTarget string

	ReadMessagesRet []models.Message
	ReadMessagesErr error

	GetMessagesRet []models.Message
	GetMessagesErr error
	SendMessageRet *models.Message

	LastBanTarget string
	LastBanReason string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, username, password string) (*api.AuthResult, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error) {
	return nil, nil
}

func (f *fakeClient) Verify(ctx context.Context, token string) (*models.User, error) {
	return nil, nil
}

func (f *fakeClient) GetUsers(ctx context.Context, adminToken string) ([]models.User, error) {
	f.GetUsersCalls++
	return f.GetUsersRet, f.GetUsersErr
}

func (f *fakeClient) BanUser(ctx context.Context, adminToken, targetUserID, reason string) error {
	f.BanCalls++
	f.LastBanTarget = targetUserID
	f.LastBanReason = reason
	return f.BanErr
}

func (f *fakeClient) UnbanUser(ctx context.Context, adminToken, targetUserID string) error {
	f.UnbanCalls++
	f.LastUnbanTarget = targetUserID
	return f.UnbanErr
}

func (f *fakeClient) ReadMessages(ctx context.Context, adminToken, user1ID, user2ID string) ([]models.Message, error) {
	return f.ReadMessagesRet, f.ReadMessagesErr
}

func (f *fakeClient) GetMessages(ctx context.Context, user1ID, user2ID string, limit int) ([]models.Message, error) {
	return f.GetMessagesRet, f.GetMessagesErr
}

func (f *fakeClient) SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	return f.SendMessageRet, nil
}

func (f *fakeClient) MarkRead(ctx context.Context, readerID, senderID string) error {
	return nil
}

// ---- fixtures ----

type fixture struct {
	client   *fakeClient
	sessions *session.Store
	deps     *deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logging.NewTextLogger(io.Discard, slog.LevelInfo)
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"), log)
	client := &fakeClient{}
	return &fixture{
		client:   client,
		sessions: sessions,
		deps: &deps{
			log:      log,
			sessions: sessions,
			auth:     services.NewAuthService(client, sessions, log),
			admin:    services.NewAdminService(client, sessions, log),
			chat:     services.NewChatService(client, sessions, log),
		},
	}
}

func (f *fixture) app() App {
	return NewApp(f.deps.log, f.sessions, f.deps.auth, f.deps.admin, f.deps.chat)
}

func (f *fixture) signIn(t *testing.T, admin bool) {
	t.Helper()
	user := models.User{ID: "USER123", Username: "alex_petrov", FullName: "Алексей Петров"}
	if admin {
		user = models.User{ID: "ADMIN001", Username: "Himo", FullName: "Сатору Химо", IsAdmin: true}
	}
	if err := f.sessions.Set(context.Background(), session.Session{Token: "T", User: user}); err != nil {
		t.Fatalf("set session: %v", err)
	}
}

// run executes a command tree, flattening batches into the individual
// messages they produce.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
