package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/setka-dev/setka/internal/client/api"
	"github.com/setka-dev/setka/internal/client/models"
	"github.com/setka-dev/setka/internal/client/session"
	"github.com/setka-dev/setka/internal/common"
	"github.com/setka-dev/setka/internal/logging"
)

// defaultThreadLimit mirrors the chat function's default page size.
const defaultThreadLimit = 50

// ChatService backs the messages section: loading a thread with another user
// and sending into it. The sender is always the session identity.
type ChatService struct {
	client   api.Client
	sessions *session.Store
	log      logging.Logger
}

func NewChatService(client api.Client, sessions *session.Store, log logging.Logger) *ChatService {
	return &ChatService{client: client, sessions: sessions, log: log}
}

// LoadThread fetches the conversation between the session user and otherID.
// Opening a thread marks the peer's messages as read; that part is best
// effort and a failure only gets logged.
func (s *ChatService) LoadThread(ctx context.Context, otherID string) ([]models.Message, error) {
	sess, ok := s.sessions.Current()
	if !ok {
		return nil, common.ErrUnauthorized
	}
	msgs, err := s.client.GetMessages(ctx, sess.User.ID, otherID, defaultThreadLimit)
	if err != nil {
		return nil, err
	}
	if err := s.client.MarkRead(ctx, sess.User.ID, otherID); err != nil {
		s.log.Warn(ctx, "mark read failed", "peer", otherID, "error", err)
	}
	return msgs, nil
}

// Send delivers a message to otherID and returns the stored message as the
// server recorded it (id and timestamp are assigned remotely).
func (s *ChatService) Send(ctx context.Context, otherID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty message", common.ErrValidation)
	}
	sess, ok := s.sessions.Current()
	if !ok {
		return nil, common.ErrUnauthorized
	}
	msg, err := s.client.SendMessage(ctx, sess.User.ID, otherID, content)
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "message sent", "to", otherID)
	return msg, nil
}
