package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_name ON projects(name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS volunteer_profiles (
		id                     TEXT PRIMARY KEY,
		first_name             TEXT NOT NULL,
		last_name              TEXT NOT NULL DEFAULT '',
		email                  TEXT NOT NULL DEFAULT '',
		weekly_committed_hours REAL NOT NULL DEFAULT 10 CHECK(weekly_committed_hours >= 0),
		active                 INTEGER NOT NULL DEFAULT 1,
		created_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_entries (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL DEFAULT '',
		project_id   TEXT REFERENCES projects(id) ON DELETE SET NULL,
		project_name TEXT NOT NULL DEFAULT '',
		hours        INTEGER NOT NULL DEFAULT 0 CHECK(hours >= 0),
		minutes      INTEGER NOT NULL DEFAULT 0 CHECK(minutes >= 0),
		is_tangible  INTEGER NOT NULL DEFAULT 0,
		date_of_work TEXT NOT NULL,
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_user_date ON time_entries(user_id, date_of_work)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_project_date ON time_entries(project_id, date_of_work)`,

	// Columns added after the first release.
	`ALTER TABLE time_entries ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE volunteer_profiles ADD COLUMN email TEXT NOT NULL DEFAULT ''`,
}
