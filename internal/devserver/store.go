package devserver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/setka-dev/setka/internal/client/models"
)

var (
	errBadCredentials = errors.New("invalid username or password")
	errBanned         = errors.New("account is banned")
	errUsernameTaken  = errors.New("username already taken")
	errUnknownUser    = errors.New("unknown user")
)

// isoLayout matches the timestamp format the hosted functions emit: local
// ISO-8601 without a timezone suffix.
const isoLayout = "2006-01-02T15:04:05"

type account struct {
	user models.User
	hash []byte
}

// Store holds all server state in memory: accounts, ban flags and the message
// log. It restarts empty except for the seeded accounts below, which mirror
// the data the client's offline sections display.
type Store struct {
	mu       sync.Mutex
	byID     map[string]*account
	byName   map[string]*account
	messages []models.Message
}

func NewStore() *Store {
	s := &Store{
		byID:   make(map[string]*account),
		byName: make(map[string]*account),
	}

	s.seed(models.User{
		ID:       "ADMIN001",
		Username: "Himo",
		Email:    "himo@setka.dev",
		FullName: "Сатору Химо",
		IsAdmin:  true,
		IsOnline: true,
	}, "Satoru1212")
	s.seed(models.User{
		ID:       "USER123",
		Username: "alex_petrov",
		Email:    "alex@example.com",
		FullName: "Алексей Петров",
		Bio:      "Люблю путешествия и фотографию",
		IsOnline: true,
	}, "password123")
	s.seed(models.User{
		ID:       "USER456",
		Username: "maria_ivanova",
		Email:    "maria@example.com",
		FullName: "Мария Иванова",
		Bio:      "Дизайнер, кофеман",
	}, "password123")

	now := time.Now()
	s.messages = []models.Message{
		{
			ID:          "MSG001",
			SenderID:    "USER123",
			ReceiverID:  "USER456",
			Content:     "Частное сообщение 1",
			MessageType: "text",
			CreatedAt:   now.Add(-2 * time.Hour).Format(isoLayout),
			IsRead:      true,
		},
		{
			ID:          "MSG002",
			SenderID:    "USER456",
			ReceiverID:  "USER123",
			Content:     "Частное сообщение 2",
			MessageType: "text",
			CreatedAt:   now.Add(-1 * time.Hour).Format(isoLayout),
		},
	}
	return s
}

func (s *Store) seed(u models.User, password string) {
	u.CreatedAt = time.Now().Format(isoLayout)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("seed %s: %v", u.Username, err))
	}
	acc := &account{user: u, hash: hash}
	s.byID[u.ID] = acc
	s.byName[strings.ToLower(u.Username)] = acc
}

func (s *Store) Authenticate(username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byName[strings.ToLower(username)]
	if !ok {
		return models.User{}, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return models.User{}, errBadCredentials
	}
	if acc.user.IsBanned {
		return models.User{}, errBanned
	}
	return acc.user, nil
}

func (s *Store) Register(username, email, fullName, bio, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[strings.ToLower(username)]; ok {
		return models.User{}, errUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	acc := &account{
		user: models.User{
			ID:        "USER" + strings.ToUpper(uuid.NewString()[:8]),
			Username:  username,
			Email:     email,
			FullName:  fullName,
			Bio:       bio,
			IsOnline:  true,
			CreatedAt: time.Now().Format(isoLayout),
		},
		hash: hash,
	}
	s.byID[acc.user.ID] = acc
	s.byName[strings.ToLower(username)] = acc
	return acc.user, nil
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.byID[id]
	if !ok {
		return models.User{}, false
	}
	return acc.user, true
}

// Users returns every account sorted by id so listings are stable across
// calls.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.byID))
	for _, acc := range s.byID {
		out = append(out, acc.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) SetBanned(id string, banned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[id]
	if !ok {
		return errUnknownUser
	}
	acc.user.IsBanned = banned
	if banned {
		acc.user.IsOnline = false
	}
	return nil
}

// Conversation returns the messages exchanged between the pair in either
// direction, oldest first, capped to the last limit entries when limit > 0.
func (s *Store) Conversation(user1, user2 string, limit int) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Message
	for _, m := range s.messages {
		if (m.SenderID == user1 && m.ReceiverID == user2) ||
			(m.SenderID == user2 && m.ReceiverID == user1) {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

func (s *Store) AppendMessage(senderID, receiverID, content string) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.Message{
		ID:          "MSG" + strings.ToUpper(uuid.NewString()[:8]),
		SenderID:    senderID,
		ReceiverID:  receiverID,
		Content:     content,
		MessageType: "text",
		CreatedAt:   time.Now().Format(isoLayout),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// MarkRead flags everything the reader received from the sender as read.
func (s *Store) MarkRead(readerID, senderID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.messages {
		m := &s.messages[i]
		if m.ReceiverID == readerID && m.SenderID == senderID && !m.IsRead {
			m.IsRead = true
			n++
		}
	}
	return n
}
