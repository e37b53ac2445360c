package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/contrib/internal/db"
	"github.com/alexanderramin/contrib/internal/repository"
	"github.com/alexanderramin/contrib/internal/testutil"
)

type testRepos struct {
	db       *sql.DB
	projects *repository.SQLiteProjectRepo
	profiles *repository.SQLiteProfileRepo
	entries  *repository.SQLiteTimeEntryRepo
	uow      db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:       database,
		projects: repository.NewSQLiteProjectRepo(database),
		profiles: repository.NewSQLiteProfileRepo(database),
		entries:  repository.NewSQLiteTimeEntryRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
