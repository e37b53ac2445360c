package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_AddsNotesColumn opens a database created before
// time entries carried notes and checks existing rows survive with defaults.
func TestMigrate_UpgradePath_AddsNotesColumn(t *testing.T) {
	conn, err := sql.Open("sqlite", MemoryPath)
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	legacy := []string{
		`CREATE TABLE projects (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			category   TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE volunteer_profiles (
			id                     TEXT PRIMARY KEY,
			first_name             TEXT NOT NULL,
			last_name              TEXT NOT NULL DEFAULT '',
			weekly_committed_hours REAL NOT NULL DEFAULT 10,
			active                 INTEGER NOT NULL DEFAULT 1,
			created_at             TEXT NOT NULL
		)`,
		`CREATE TABLE time_entries (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL DEFAULT '',
			project_id   TEXT REFERENCES projects(id) ON DELETE SET NULL,
			project_name TEXT NOT NULL DEFAULT '',
			hours        INTEGER NOT NULL DEFAULT 0,
			minutes      INTEGER NOT NULL DEFAULT 0,
			is_tangible  INTEGER NOT NULL DEFAULT 0,
			date_of_work TEXT NOT NULL,
			created_at   TEXT NOT NULL,
			updated_at   TEXT NOT NULL
		)`,
		`INSERT INTO volunteer_profiles (id, first_name, created_at) VALUES ('u1', 'Ada', '2023-01-01T00:00:00Z')`,
		`INSERT INTO time_entries (id, user_id, hours, minutes, date_of_work, created_at, updated_at)
			VALUES ('e1', 'u1', 2, 15, '2023-01-02', '2023-01-02T00:00:00Z', '2023-01-02T00:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := conn.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(conn))

	var hours, minutes int
	var notes string
	err = conn.QueryRow(`SELECT hours, minutes, notes FROM time_entries WHERE id = 'e1'`).Scan(&hours, &minutes, &notes)
	require.NoError(t, err)
	assert.Equal(t, 2, hours)
	assert.Equal(t, 15, minutes)
	assert.Equal(t, "", notes)

	var email string
	err = conn.QueryRow(`SELECT email FROM volunteer_profiles WHERE id = 'u1'`).Scan(&email)
	require.NoError(t, err)
	assert.Equal(t, "", email)
}
