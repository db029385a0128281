package api

import (
	"context"

	"github.com/setka-dev/setka/internal/client/models"
)

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	Token string
	User  models.User
}

// RegisterRequest carries the profile fields for the register action.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

// Client is the remote surface the services depend on. One method per backend
// action; each call is a single request/response exchange and must honor
// context cancellation.
//
// Errors are mapped onto the sentinels in internal/common:
//   - common.ErrUnavailable  — transport failure or unparseable response
//   - common.ErrUnauthorized — the remote refused the credentials/token
//   - common.ErrRejected     — the remote answered success=false
type Client interface {
	// Auth function.
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Verify(ctx context.Context, token string) (*models.User, error)

	// Admin moderation function. Every call carries the admin token in the
	// request body; the server is the authorization boundary.
	GetUsers(ctx context.Context, adminToken string) ([]models.User, error)
	BanUser(ctx context.Context, adminToken, targetUserID, reason string) error
	UnbanUser(ctx context.Context, adminToken, targetUserID string) error
	ReadMessages(ctx context.Context, adminToken, user1ID, user2ID string) ([]models.Message, error)

	// Chat function.
	GetMessages(ctx context.Context, user1ID, user2ID string, limit int) ([]models.Message, error)
	SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.Message, error)
	MarkRead(ctx context.Context, readerID, senderID string) error
}
