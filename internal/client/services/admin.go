package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/setka-dev/setka/internal/client/api"
	"github.com/setka-dev/setka/internal/client/models"
	"github.com/setka-dev/setka/internal/client/session"
	"github.com/setka-dev/setka/internal/common"
	"github.com/setka-dev/setka/internal/logging"
)

// AdminService issues moderation commands with the stored credential token.
// Hiding the admin screen from non-admins is UX only; the server re-checks
// the token on every command and that check is the actual security boundary.
type AdminService struct {
	client   api.Client
	sessions *session.Store
	log      logging.Logger
}

func NewAdminService(client api.Client, sessions *session.Store, log logging.Logger) *AdminService {
	return &AdminService{client: client, sessions: sessions, log: log}
}

// ListUsers fetches the complete user list. The caller replaces its local
// list wholesale: reconciliation is pull-based, never an optimistic edit.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.client.GetUsers(ctx, s.sessions.Token())
}

// BanUser blocks a user. Both the target and a non-blank reason are required;
// a violated precondition is rejected locally and no request is issued.
func (s *AdminService) BanUser(ctx context.Context, targetUserID, reason string) error {
	if targetUserID == "" || strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: select a user and give a reason", common.ErrValidation)
	}
	if err := s.client.BanUser(ctx, s.sessions.Token(), targetUserID, reason); err != nil {
		return err
	}
	s.log.Info(ctx, "user banned", "target", targetUserID, "reason", reason)
	return nil
}

// UnbanUser lifts a block. There is no local precondition beyond the target
// id: unbanning an already-unbanned user is a valid no-op and the remote
// response alone determines the outcome.
func (s *AdminService) UnbanUser(ctx context.Context, targetUserID string) error {
	if err := s.client.UnbanUser(ctx, s.sessions.Token(), targetUserID); err != nil {
		return err
	}
	s.log.Info(ctx, "user unbanned", "target", targetUserID)
	return nil
}

// ReadConversation fetches the private messages between two users. The remote
// contract does not promise chronological order, so messages are sorted here
// by created_at (ISO-8601 strings compare correctly), keeping server order as
// the tiebreak.
func (s *AdminService) ReadConversation(ctx context.Context, user1ID, user2ID string) ([]models.Message, error) {
	if user1ID == "" || user2ID == "" {
		return nil, fmt.Errorf("%w: both user ids are required", common.ErrValidation)
	}
	msgs, err := s.client.ReadMessages(ctx, s.sessions.Token(), user1ID, user2ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt < msgs[j].CreatedAt })
	return msgs, nil
}
