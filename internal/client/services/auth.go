// Package services contains the application services sitting between the UI
// and the HTTP client: local precondition checks, session bookkeeping and the
// reconciliation contract for admin commands.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/setka-dev/setka/internal/client/api"
	"github.com/setka-dev/setka/internal/client/session"
	"github.com/setka-dev/setka/internal/common"
	"github.com/setka-dev/setka/internal/logging"
)

// RegisterForm carries the registration screen's fields before validation.
type RegisterForm struct {
	Username        string
	Email           string
	FullName        string
	Password        string
	ConfirmPassword string
	Bio             string
}

// AuthService implements login, registration and logout on top of the auth
// function, storing the resulting session.
type AuthService struct {
	client   api.Client
	sessions *session.Store
	log      logging.Logger
}

func NewAuthService(client api.Client, sessions *session.Store, log logging.Logger) *AuthService {
	return &AuthService{client: client, sessions: sessions, log: log}
}

// Login authenticates and installs the session. On any failure the existing
// session (if one was restored earlier) is left untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: fill in all fields", common.ErrValidation)
	}

	res, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.log.Info(ctx, "login failed", "user", username, "err", err)
		return err
	}

	if err := s.sessions.Set(ctx, session.Session{Token: res.Token, User: res.User}); err != nil {
		// Memory still holds the session; only restart durability is lost.
		s.log.Warn(ctx, "session persisted with errors", "err", err)
	}
	s.log.Info(ctx, "logged in", "user", res.User.Username, "admin", res.User.IsAdmin)
	return nil
}

// Register validates the form the way the registration screen demands and
// creates the account. A successful registration logs the user in.
func (s *AuthService) Register(ctx context.Context, form RegisterForm) error {
	if form.Username == "" || form.Email == "" || form.FullName == "" || form.Password == "" {
		return fmt.Errorf("%w: fill in all required fields", common.ErrValidation)
	}
	if form.Password != form.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if len(form.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", common.ErrValidation)
	}

	res, err := s.client.Register(ctx, api.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		FullName: form.FullName,
		Password: form.Password,
		Bio:      strings.TrimSpace(form.Bio),
	})
	if err != nil {
		s.log.Info(ctx, "registration failed", "user", form.Username, "err", err)
		return err
	}

	if err := s.sessions.Set(ctx, session.Session{Token: res.Token, User: res.User}); err != nil {
		s.log.Warn(ctx, "session persisted with errors", "err", err)
	}
	s.log.Info(ctx, "registered", "user", res.User.Username)
	return nil
}

// Logout drops the session unconditionally. There is no error path.
func (s *AuthService) Logout(ctx context.Context) {
	s.sessions.Clear(ctx)
	s.log.Info(ctx, "logged out")
}
