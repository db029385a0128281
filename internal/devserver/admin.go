package devserver

import (
	"encoding/json"
	"net/http"
	"strings"
)

type adminRequest struct {
	Action       string `json:"action"`
	AdminToken   string `json:"admin_token"`
	TargetUserID string `json:"target_user_id"`
	Reason       string `json:"reason"`
	User1ID      string `json:"user1_id"`
	User2ID      string `json:"user2_id"`
}

// handleAdmin verifies the token before dispatching: this check, not the
// client's screen gating, decides who may moderate.
func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims, err := parseToken(s.cfg.JWTSecret, req.AdminToken)
	if err != nil {
		fail(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	if !claims.IsAdmin {
		s.log.Warn(r.Context(), "admin action refused", "user", claims.Username, "action", req.Action)
		fail(w, http.StatusForbidden, "Admin access required")
		return
	}

	switch req.Action {
	case "get_users":
		users := s.store.Users()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "users": users, "total": len(users)})

	case "ban_user":
		if req.TargetUserID == "" || strings.TrimSpace(req.Reason) == "" {
			fail(w, http.StatusBadRequest, "target_user_id and reason are required")
			return
		}
		if err := s.store.SetBanned(req.TargetUserID, true); err != nil {
			fail(w, http.StatusNotFound, "User not found")
			return
		}
		s.log.Info(r.Context(), "user banned", "target", req.TargetUserID, "by", claims.Username, "reason", req.Reason)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	case "unban_user":
		if req.TargetUserID == "" {
			fail(w, http.StatusBadRequest, "target_user_id is required")
			return
		}
		if err := s.store.SetBanned(req.TargetUserID, false); err != nil {
			fail(w, http.StatusNotFound, "User not found")
			return
		}
		s.log.Info(r.Context(), "user unbanned", "target", req.TargetUserID, "by", claims.Username)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	case "read_messages":
		if req.User1ID == "" || req.User2ID == "" {
			fail(w, http.StatusBadRequest, "user1_id and user2_id are required")
			return
		}
		msgs := s.store.Conversation(req.User1ID, req.User2ID, 0)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "messages": msgs})

	default:
		fail(w, http.StatusBadRequest, "unknown action")
	}
}
