package archive

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id          TEXT PRIMARY KEY,
		provider    TEXT NOT NULL,
		code        INTEGER NOT NULL,
		occurred_at TEXT NOT NULL,
		payload     TEXT NOT NULL DEFAULT '',
		archived_at TEXT NOT NULL
	)`,

	// One row per observed transition; snapshots taken on overlapping
	// windows must not duplicate events.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_events_identity ON events(provider, code, occurred_at)`,
	`CREATE INDEX IF NOT EXISTS idx_events_occurred ON events(occurred_at)`,
}
