package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/gogym/internal/session"
	"github.com/claude/gogym/internal/upstream"
)

type contextKey int

const sessionKey contextKey = iota

// msgLoginRequired is shown when a protected endpoint is hit without a
// session.
const msgLoginRequired = "ログインが必要です"

// withSession resolves the session cookie into a session row and stores it
// in the request context. Missing or stale cookies are not an error here;
// requireSession decides whether a session is mandatory.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.cookie.Name)
		if err == nil && cookie.Value != "" {
			sess, err := s.store.Get(r.Context(), cookie.Value)
			if err == nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey, sess))
			} else if err != session.ErrNoSession {
				s.log.Error("session lookup failed", "error", err)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// requireSession rejects requests that did not resolve to a session.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionFrom(r) == nil {
			writeError(w, http.StatusUnauthorized, msgLoginRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionFrom returns the request's session, or nil when anonymous.
func sessionFrom(r *http.Request) *session.Session {
	if sess, ok := r.Context().Value(sessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// accessToken resolves a valid upstream token for the request's session,
// refreshing when needed. On failure it writes the 401 itself and returns
// ok=false; the expired/unrefreshable session reads as logged out.
func (s *Server) accessToken(w http.ResponseWriter, r *http.Request) (string, *session.Session, bool) {
	sess := sessionFrom(r)
	if sess == nil {
		writeError(w, http.StatusUnauthorized, msgLoginRequired)
		return "", nil, false
	}
	token, err := s.auth.AccessToken(r.Context(), sess)
	if err != nil {
		writeError(w, http.StatusUnauthorized, upstream.MsgSessionExpired)
		return "", nil, false
	}
	return token, sess, true
}

// optionalToken returns a bearer token when the request has a healthy
// session, and "" for anonymous browsing.
func (s *Server) optionalToken(r *http.Request) string {
	sess := sessionFrom(r)
	if sess == nil {
		return ""
	}
	token, err := s.auth.AccessToken(r.Context(), sess)
	if err != nil {
		return ""
	}
	return token
}

// RequestLogging returns middleware that logs each request.
func RequestLogging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

// CORS grants credentialed cross-origin access to the allowlisted frontend
// origins only — the session cookie travels with every BFF call, so the
// origin must never be blindly reflected. An empty allowlist emits no CORS
// headers (same-origin deployment).
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Vary", "Origin")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// statusWriter wraps ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
