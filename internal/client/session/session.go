// Package session owns the client-held record of the authenticated identity
// and its credential token. The record lives in memory for the lifetime of
// the process and is mirrored to a JSON file so a restart preserves the
// session, the way the original browser client used localStorage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/setka-dev/setka/internal/client/models"
	"github.com/setka-dev/setka/internal/logging"
)

// Session pairs the identity with its credential token. Expiry is implicit:
// the client never checks it, an expired token simply stops being accepted
// server-side.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store holds the current session. All methods are safe for concurrent use,
// though in practice mutations arrive serially from the UI loop.
type Store struct {
	mu   sync.Mutex
	path string
	cur  *Session
	log  logging.Logger
}

func NewStore(path string, log logging.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load restores a persisted session from disk. A missing file is the normal
// logged-out state and is not an error; a corrupt file is discarded so the
// user just has to log in again.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		s.log.Warn(ctx, "discarding unreadable session file", "path", s.path)
		_ = os.Remove(s.path)
		return nil
	}

	s.cur = &sess
	s.log.Info(ctx, "session restored", "user", sess.User.Username)
	return nil
}

// Current returns a copy of the active session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return Session{}, false
	}
	return *s.cur, true
}

// Token returns the credential token of the active session, or "".
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Token
}

// Set installs a new session and persists it. The in-memory session is kept
// even when persistence fails; the caller loses only restart durability.
func (s *Store) Set(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = &sess
	if err := s.persist(sess); err != nil {
		s.log.Warn(ctx, "session not persisted", "err", err)
		return err
	}
	return nil
}

// Clear wipes the session from memory and disk. Logout has no error path:
// removal failures are logged and otherwise ignored.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn(ctx, "session file not removed", "err", err)
	}
}

func (s *Store) persist(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
