// Package auth implements the session token lifecycle against the upstream
// API: credential login, sliding-expiry refresh, and logout. The state
// machine is unauthenticated -> valid -> expiring -> refreshed, with a
// sticky RefreshTokenError branch that forces re-login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/gogym/internal/session"
	"github.com/claude/gogym/internal/upstream"
)

// RefreshSkew is how long before expiry a token is refreshed, so an access
// token never runs out mid-request.
const RefreshSkew = 60 * time.Second

// RefreshTokenError is the sticky auth_error value recorded when a refresh
// fails; the frontend treats a session carrying it as logged out.
const RefreshTokenError = "RefreshTokenError"

// ErrRefreshFailed is returned when the access token could not be
// refreshed. The session keeps its RefreshTokenError mark until re-login.
var ErrRefreshFailed = errors.New("session refresh failed")

// Manager drives the token lifecycle over the session store and the
// upstream API client.
type Manager struct {
	store *session.Store
	api   *upstream.Client
	log   *slog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a Manager.
func New(store *session.Store, api *upstream.Client, log *slog.Logger) *Manager {
	return &Manager{store: store, api: api, log: log, now: time.Now}
}

// Login exchanges credentials upstream and creates a server-side session.
func (m *Manager) Login(ctx context.Context, email, password string) (*session.Session, error) {
	pair, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	expiresAt := m.now().Unix() + pair.ExpiresIn
	sess, err := m.store.Create(ctx, pair.UserID, pair.AccessToken, pair.RefreshToken, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	m.log.Info("session created", "session_id", sess.ID, "user_id", sess.UserID)
	return sess, nil
}

// Logout deletes the session; flash and cache rows cascade with it.
func (m *Manager) Logout(ctx context.Context, sess *session.Session) error {
	if err := m.store.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.log.Info("session deleted", "session_id", sess.ID)
	return nil
}

// AccessToken returns a valid access token for the session, refreshing it
// upstream when within RefreshSkew of expiry. A failed refresh marks the
// session with RefreshTokenError and returns ErrRefreshFailed; the mark is
// sticky, so later calls fail fast until the user logs in again.
// On success the passed session is updated in place.
func (m *Manager) AccessToken(ctx context.Context, sess *session.Session) (string, error) {
	if sess.AuthError != "" {
		return "", ErrRefreshFailed
	}
	if m.now().Unix() < sess.ExpiresAt-int64(RefreshSkew.Seconds()) {
		return sess.AccessToken, nil
	}

	pair, err := m.api.RefreshSession(ctx, sess.RefreshToken)
	if err != nil {
		m.log.Warn("token refresh failed", "session_id", sess.ID, "error", err)
		if markErr := m.store.MarkAuthError(ctx, sess.ID, RefreshTokenError); markErr != nil {
			m.log.Error("marking auth error failed", "session_id", sess.ID, "error", markErr)
		}
		sess.AuthError = RefreshTokenError
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	expiresAt := m.now().Unix() + pair.ExpiresIn
	if err := m.store.UpdateTokens(ctx, sess.ID, pair.AccessToken, pair.RefreshToken, expiresAt); err != nil {
		return "", fmt.Errorf("storing refreshed tokens: %w", err)
	}
	sess.AccessToken = pair.AccessToken
	sess.RefreshToken = pair.RefreshToken
	sess.ExpiresAt = expiresAt
	sess.AuthError = ""
	m.log.Info("session refreshed", "session_id", sess.ID, "expires_at", expiresAt)
	return sess.AccessToken, nil
}
