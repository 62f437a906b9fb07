package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/gogym/internal/models"
)

// CacheLastRecord stores an exercise's previous record for this session so
// repeated "copy previous" lookups skip the upstream round-trip. Rows are
// removed with the session.
func (s *Store) CacheLastRecord(ctx context.Context, sessionID string, exerciseID int64, row models.ExerciseRow) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encoding last record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO last_record_cache (session_id, exercise_id, payload, fetched_at)
		 VALUES (?, ?, ?, ?)`,
		sessionID, exerciseID, string(payload), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("caching last record: %w", err)
	}
	return nil
}

// CachedLastRecord returns the cached previous record for an exercise, or
// nil on a cache miss.
func (s *Store) CachedLastRecord(ctx context.Context, sessionID string, exerciseID int64) (*models.ExerciseRow, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM last_record_cache WHERE session_id = ? AND exercise_id = ?`,
		sessionID, exerciseID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading last record cache: %w", err)
	}
	var row models.ExerciseRow
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		return nil, fmt.Errorf("decoding cached last record: %w", err)
	}
	return &row, nil
}

// ClearLastRecords drops the session's entire last-record cache. Called
// after a record is saved: the just-saved sets become the new previous
// record, so every cached entry is potentially stale.
func (s *Store) ClearLastRecords(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM last_record_cache WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("clearing last record cache: %w", err)
	}
	return nil
}
