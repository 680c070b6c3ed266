package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mumpitzstuff/goodTimes/internal/domain"
)

// timeLayout is RFC 3339 with fixed-width microseconds. Fixed width keeps
// lexicographic order equal to chronological order, which the occurred_at
// index relies on.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// Store reads and writes archived events.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open archive database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// BatchInsert archives the given events in one transaction and returns how
// many were actually new. Events already present, identified by provider,
// code and timestamp, are silently skipped.
func (s *Store) BatchInsert(ctx context.Context, events []domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting archive transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO events (id, provider, code, occurred_at, payload, archived_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing archive insert: %w", err)
	}
	defer stmt.Close()

	archivedAt := time.Now().UTC().Format(timeLayout)
	inserted := 0
	for _, ev := range events {
		res, err := stmt.ExecContext(ctx,
			uuid.NewString(),
			ev.Provider,
			ev.Code,
			ev.Timestamp.UTC().Format(timeLayout),
			ev.Payload,
			archivedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting event: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("reading rows affected: %w", err)
		}
		inserted += int(rows)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing archive transaction: %w", err)
	}
	committed = true
	return inserted, nil
}

// EventsSince returns archived events at or after since, ascending by
// timestamp. Timestamps come back in the local time zone to line up with the
// live journal sources.
func (s *Store) EventsSince(ctx context.Context, since time.Time) ([]domain.Event, error) {
	query := `SELECT provider, code, occurred_at, payload FROM events
		WHERE occurred_at >= ?
		ORDER BY occurred_at, provider, code`
	rows, err := s.db.QueryContext(ctx, query, since.UTC().Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("querying archived events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			ev         domain.Event
			occurredAt string
		)
		if err := rows.Scan(&ev.Provider, &ev.Code, &occurredAt, &ev.Payload); err != nil {
			return nil, fmt.Errorf("scanning archived event: %w", err)
		}
		ts, err := time.Parse(timeLayout, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parsing archived timestamp %q: %w", occurredAt, err)
		}
		ev.Timestamp = ts.Local()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archived events: %w", err)
	}
	return events, nil
}

// Prune deletes events that occurred before cutoff and returns how many rows
// went away.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE occurred_at < ?`,
		cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("pruning archive: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return int(rows), nil
}

// Count returns the number of archived events.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting archived events: %w", err)
	}
	return count, nil
}

// Bounds returns the oldest and newest archived timestamps. ok is false when
// the archive is empty.
func (s *Store) Bounds(ctx context.Context) (oldest, newest time.Time, ok bool, err error) {
	var minStr, maxStr sql.NullString
	if err := s.db.QueryRowContext(ctx, `SELECT MIN(occurred_at), MAX(occurred_at) FROM events`).
		Scan(&minStr, &maxStr); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("querying archive bounds: %w", err)
	}
	if !minStr.Valid || !maxStr.Valid {
		return time.Time{}, time.Time{}, false, nil
	}
	oldest, err = time.Parse(timeLayout, minStr.String)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("parsing archive bound %q: %w", minStr.String, err)
	}
	newest, err = time.Parse(timeLayout, maxStr.String)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("parsing archive bound %q: %w", maxStr.String, err)
	}
	return oldest.Local(), newest.Local(), true, nil
}
