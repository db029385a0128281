package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type authRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Token    string `json:"token"`
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case "login":
		s.login(w, r, req)
	case "register":
		s.register(w, r, req)
	case "verify":
		s.verify(w, r, req)
	default:
		fail(w, http.StatusBadRequest, "unknown action")
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, req authRequest) {
	user, err := s.store.Authenticate(req.Username, req.Password)
	if err != nil {
		s.log.Warn(r.Context(), "login refused", "username", req.Username, "reason", err)
		fail(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := newToken(s.cfg.JWTSecret, user.ID, user.Username, user.IsAdmin, s.cfg.TokenTTL)
	if err != nil {
		fail(w, http.StatusInternalServerError, "token issuance failed")
		return
	}
	s.log.Info(r.Context(), "login", "user", user.Username, "admin", user.IsAdmin)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token, "user": user})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request, req authRequest) {
	if strings.TrimSpace(req.Username) == "" || len(req.Password) < 6 {
		fail(w, http.StatusBadRequest, "username and a password of at least 6 characters are required")
		return
	}

	user, err := s.store.Register(req.Username, req.Email, req.FullName, req.Bio, req.Password)
	if err != nil {
		if errors.Is(err, errUsernameTaken) {
			fail(w, http.StatusConflict, "Username already taken")
			return
		}
		fail(w, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := newToken(s.cfg.JWTSecret, user.ID, user.Username, user.IsAdmin, s.cfg.TokenTTL)
	if err != nil {
		fail(w, http.StatusInternalServerError, "token issuance failed")
		return
	}
	s.log.Info(r.Context(), "registered", "user", user.Username)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token, "user": user})
}

// verify answers with its own shape ({valid, user}); an invalid token is a
// 200 with valid=false, not a refusal.
func (s *Server) verify(w http.ResponseWriter, r *http.Request, req authRequest) {
	claims, err := parseToken(s.cfg.JWTSecret, req.Token)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"valid": false})
		return
	}
	user, ok := s.store.UserByID(claims.Subject)
	if !ok || user.IsBanned {
		writeJSON(w, http.StatusOK, map[string]any{"valid": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true, "user": user})
}
