package session

import (
	"context"
	"database/sql"
	"fmt"
)

// Flash is a one-shot banner message shown after a navigation: set by the
// handler that performed the action, consumed (and deleted) on first read.
type Flash struct {
	Variant string `json:"variant"`
	Message string `json:"message"`
}

// SetFlash stores the session's pending flash, replacing any previous one.
func (s *Store) SetFlash(ctx context.Context, sessionID, variant, message string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO flash (session_id, variant, message) VALUES (?, ?, ?)`,
		sessionID, variant, message)
	if err != nil {
		return fmt.Errorf("setting flash: %w", err)
	}
	return nil
}

// ConsumeFlash returns and deletes the session's pending flash, or nil when
// there is none.
func (s *Store) ConsumeFlash(ctx context.Context, sessionID string) (*Flash, error) {
	var f Flash
	err := s.db.QueryRowContext(ctx,
		`SELECT variant, message FROM flash WHERE session_id = ?`, sessionID).
		Scan(&f.Variant, &f.Message)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading flash: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM flash WHERE session_id = ?`, sessionID); err != nil {
		return nil, fmt.Errorf("consuming flash: %w", err)
	}
	return &f, nil
}
