package devserver

import (
	"encoding/json"
	"net/http"
	"strings"
)

type chatRequest struct {
	Action     string `json:"action"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
	User1ID    string `json:"user1_id"`
	User2ID    string `json:"user2_id"`
	Limit      int    `json:"limit"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case "send_message":
		if req.SenderID == "" || req.ReceiverID == "" || strings.TrimSpace(req.Content) == "" {
			fail(w, http.StatusBadRequest, "sender_id, receiver_id and content are required")
			return
		}
		if user, ok := s.store.UserByID(req.SenderID); ok && user.IsBanned {
			fail(w, http.StatusForbidden, "Account is banned")
			return
		}
		msg := s.store.AppendMessage(req.SenderID, req.ReceiverID, req.Content)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": msg})

	case "get_messages":
		if req.User1ID == "" || req.User2ID == "" {
			fail(w, http.StatusBadRequest, "user1_id and user2_id are required")
			return
		}
		msgs := s.store.Conversation(req.User1ID, req.User2ID, req.Limit)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "messages": msgs})

	case "mark_read":
		if req.User1ID == "" || req.User2ID == "" {
			fail(w, http.StatusBadRequest, "user1_id and user2_id are required")
			return
		}
		// user1 is the reader, user2 the peer whose messages become read.
		n := s.store.MarkRead(req.User1ID, req.User2ID)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "marked": n})

	default:
		fail(w, http.StatusBadRequest, "unknown action")
	}
}
