package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/gogym/internal/auth"
	"github.com/claude/gogym/internal/upstream"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgInvalidCredentials)
		return
	}
	sess, err := s.auth.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		s.log.Info("login rejected", "error", err)
		writeError(w, http.StatusUnauthorized, upstream.UserMessage(err))
		return
	}
	s.setSessionCookie(w, sess.ID)
	writeResult(w, http.StatusOK, map[string]any{"user_id": sess.UserID})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if err := s.auth.Logout(r.Context(), sess); err != nil {
		s.log.Error("logout failed", "error", err)
	}
	s.clearSessionCookie(w)
	writeResult(w, http.StatusOK, nil)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req upstream.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, upstream.MsgNetworkError)
		return
	}
	if err := s.api.Signup(r.Context(), req); err != nil {
		writeError(w, upstreamStatus(err), upstream.UserMessage(err))
		return
	}
	// Sign the fresh account straight in.
	sess, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, upstream.UserMessage(err))
		return
	}
	s.setSessionCookie(w, sess.ID)
	writeResult(w, http.StatusCreated, map[string]any{"user_id": sess.UserID})
}

// handleSession reports the login state the frontend bases its UI on. A
// session whose refresh has failed is surfaced as an auth error so the
// client can force a re-login.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if sess == nil {
		writeResult(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	data := map[string]any{
		"authenticated": true,
		"user_id":       sess.UserID,
	}
	if sess.AuthError != "" {
		data["auth_error"] = sess.AuthError
	} else if _, err := s.auth.AccessToken(r.Context(), sess); err != nil {
		data["auth_error"] = auth.RefreshTokenError
	}
	writeResult(w, http.StatusOK, data)
}

func (s *Server) handleFlash(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	flash, err := s.store.ConsumeFlash(r.Context(), sess.ID)
	if err != nil {
		s.log.Error("flash lookup failed", "error", err)
		writeResult(w, http.StatusOK, nil)
		return
	}
	writeResult(w, http.StatusOK, flash)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   s.cookie.MaxAge,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
