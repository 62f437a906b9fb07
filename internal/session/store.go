// Package session is the BFF's only owned state: browser sessions holding
// the upstream access/refresh tokens, one-shot flash messages, and the
// per-session last-record cache. Everything else lives upstream.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNoSession is returned when a session ID resolves to nothing, either
// because it never existed or because it was deleted.
var ErrNoSession = errors.New("session not found")

// Store persists sessions in a local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the session database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dbPath, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, "sqlite://"+dbPath)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Session is one logged-in browser session. ExpiresAt is the access token's
// expiry (unix seconds); AuthError is non-empty once a refresh has failed,
// and stays set until the user logs in again.
type Session struct {
	ID           string
	UserID       int64
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
	AuthError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Create inserts a new session with a random ID.
func (s *Store) Create(ctx context.Context, userID int64, accessToken, refreshToken string, expiresAt int64) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, access_token, refresh_token, expires_at, auth_error, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, '', ?, ?)`,
		sess.ID, sess.UserID, sess.AccessToken, sess.RefreshToken, sess.ExpiresAt,
		now.Unix(), now.Unix())
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// Get loads a session by ID.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	var createdAt, updatedAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, access_token, refresh_token, expires_at, auth_error, created_at, updated_at
		 FROM sessions WHERE id = ?`, id).
		Scan(&sess.ID, &sess.UserID, &sess.AccessToken, &sess.RefreshToken,
			&sess.ExpiresAt, &sess.AuthError, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	sess.CreatedAt = time.Unix(createdAt, 0)
	sess.UpdatedAt = time.Unix(updatedAt, 0)
	return &sess, nil
}

// UpdateTokens replaces both tokens and the expiry after a refresh, and
// clears any previous auth error.
func (s *Store) UpdateTokens(ctx context.Context, id, accessToken, refreshToken string, expiresAt int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET access_token = ?, refresh_token = ?, expires_at = ?, auth_error = '', updated_at = ?
		 WHERE id = ?`,
		accessToken, refreshToken, expiresAt, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("updating session tokens: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoSession
	}
	return nil
}

// MarkAuthError records a failed refresh. The error is sticky: it is only
// cleared by a successful refresh or a fresh login.
func (s *Store) MarkAuthError(ctx context.Context, id, reason string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET auth_error = ?, updated_at = ? WHERE id = ?`,
		reason, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("marking auth error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoSession
	}
	return nil
}

// Delete removes a session; flash and cache rows cascade.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions older than ttl. Returns the count removed.
func (s *Store) DeleteExpired(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting expired sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
