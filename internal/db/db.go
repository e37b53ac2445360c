package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var pragmas = []struct {
	stmt string
	dsn  string
	desc string
}{
	{"PRAGMA journal_mode = WAL", "journal_mode(WAL)", "setting WAL mode"},
	{"PRAGMA foreign_keys = ON", "foreign_keys(1)", "enabling foreign keys"},
	{"PRAGMA busy_timeout = 5000", "busy_timeout(5000)", "setting busy timeout"},
}

// dsn adds the pragmas as connection parameters so every pooled connection
// gets them, not only the first.
func dsn(path string) string {
	if path == MemoryPath {
		return path
	}
	params := make([]string, len(pragmas))
	for i, p := range pragmas {
		params[i] = "_pragma=" + p.dsn
	}
	return "file:" + path + "?" + strings.Join(params, "&")
}

// OpenDB opens the SQLite time entry store at path, creating its directory
// when needed, and brings the schema up to date.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		// Every pooled connection would otherwise get its own empty database.
		conn.SetMaxOpenConns(1)
	}

	for _, p := range pragmas {
		if _, err := conn.Exec(p.stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s: %w", p.desc, err)
		}
	}

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return conn, nil
}
