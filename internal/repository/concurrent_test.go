package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/contrib/internal/db"
	"github.com/alexanderramin/contrib/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "concurrent_test.db")
	database, err := db.OpenDB(dbPath)
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite checks that report reads see whole
// rows while entries are being logged.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(database)
	entryRepo := NewSQLiteTimeEntryRepo(database)

	proj := testutil.NewTestProject("Food Bank")
	require.NoError(t, projRepo.Create(ctx, proj))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			e := testutil.NewTestEntry("u1", testutil.WithProject(proj), testutil.WithTime(0, 30))
			if err := entryRepo.Create(ctx, e); err != nil {
				t.Errorf("writer: create entry %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				entries, err := entryRepo.ListByUsers(ctx, []string{"u1"}, testutil.Day(2000, 1, 1), testutil.Day(2100, 1, 1))
				if err != nil {
					t.Errorf("reader %d: list entries: %v", reader, err)
					return
				}
				for _, e := range entries {
					if e.ID == "" || e.ProjectID != proj.ID {
						t.Errorf("reader %d: got partially written entry %+v", reader, e)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	entries, err := entryRepo.ListByUsers(ctx, []string{"u1"}, testutil.Day(2000, 1, 1), testutil.Day(2100, 1, 1))
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}
