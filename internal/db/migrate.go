package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list can be re-run on every startup.
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
		id TEXT PRIMARY KEY,
		source_id TEXT NOT NULL,
		uid TEXT NOT NULL,
		title TEXT NOT NULL,
		start_at TEXT NOT NULL,
		end_at TEXT NOT NULL,
		all_day INTEGER NOT NULL DEFAULT 0,
		attendee_count INTEGER NOT NULL DEFAULT 0,
		calendar TEXT NOT NULL DEFAULT 'work',
		recurring INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'confirmed',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE (source_id, uid, start_at)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_start_at ON events(start_at)`,

	`CREATE INDEX IF NOT EXISTS idx_events_source ON events(source_id)`,

	// Single-row table holding the latest behavioral profile as JSON.
	`CREATE TABLE IF NOT EXISTS profiles (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL,
		analyzed_at TEXT NOT NULL,
		schema_version INTEGER NOT NULL
	)`,
}
