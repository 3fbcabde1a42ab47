package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are run in order on every open. Statements must be
// re-runnable: tables use IF NOT EXISTS and ALTER TABLE failures for
// already-present columns are tolerated.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		total_hours    REAL NOT NULL CHECK(total_hours > 0),
		per_day_hours  REAL NOT NULL CHECK(per_day_hours > 0),
		shipping_date  TEXT,
		in_hand_date   TEXT,
		calendar_group TEXT NOT NULL DEFAULT '',
		color_key      TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		job_id TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		idx    INTEGER NOT NULL,
		date   TEXT NOT NULL,
		hours  REAL NOT NULL CHECK(hours > 0),
		PRIMARY KEY (job_id, idx)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_date ON schedule_entries(date)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_calendar_group ON jobs(calendar_group)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
