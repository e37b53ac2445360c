package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/contrib/internal/db"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/repository"
	"github.com/google/uuid"
)

type entryService struct {
	entries  repository.TimeEntryRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewEntryService(entries repository.TimeEntryRepo, uow db.UnitOfWork, observers ...UseCaseObserver) EntryService {
	return &entryService{
		entries:  entries,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Log validates a submitted entry form and stores the entry. The project is
// looked up in the same transaction so the stored name matches the id.
func (s *entryService) Log(ctx context.Context, userID string, form domain.EntryForm) (entry *domain.LoggedEntry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": userID, "project": form.ProjectID}
	defer func() {
		observe(ctx, s.observer, "log-entry", startedAt, err, fields)
	}()

	entry, err = form.Entry(userID, "")
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	entry.ID = uuid.New().String()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if entry.ProjectID != "" {
			project, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, entry.ProjectID)
			if err != nil {
				return fmt.Errorf("looking up project %s: %w", entry.ProjectID, err)
			}
			entry.ProjectName = project.Name
		}
		return repository.NewSQLiteTimeEntryRepo(tx).Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	fields["minutes"] = entry.Hours*60 + entry.Minutes
	return entry, nil
}

func (s *entryService) GetByID(ctx context.Context, id string) (*domain.LoggedEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *entryService) List(ctx context.Context, userIDs []string, from, to time.Time) ([]*domain.LoggedEntry, error) {
	return s.entries.ListByUsers(ctx, userIDs, from, to)
}

// ToggleTangible flips whether the entry counts as tangible time.
func (s *entryService) ToggleTangible(ctx context.Context, id string) (*domain.LoggedEntry, error) {
	var updated *domain.LoggedEntry
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteTimeEntryRepo(tx)
		e, err := txEntries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		e.IsTangible = !e.IsTangible
		if err := txEntries.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}
