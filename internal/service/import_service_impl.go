package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/contrib/internal/app"
	"github.com/alexanderramin/contrib/internal/db"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/importer"
	"github.com/alexanderramin/contrib/internal/report"
	"github.com/alexanderramin/contrib/internal/repository"
	"github.com/google/uuid"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string, source importer.Source, userID string) (*app.ImportResult, error) {
	payload, err := importer.LoadPayloadFile(path, source)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPayload(ctx, payload, userID)
}

// ImportPayload stores every well-formed record of payload in one
// transaction. Records without a personId are attributed to userID. Records
// whose id is already stored are skipped, so re-importing a payload is a
// no-op. Unknown projects are created on the fly.
func (s *importService) ImportPayload(ctx context.Context, payload *importer.Payload, userID string) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": string(payload.Source), "records": len(payload.Entries)}
	defer func() {
		observe(ctx, s.observer, "import-entries", startedAt, err, fields)
	}()

	result = &app.ImportResult{Source: payload.Source, Total: len(payload.Entries)}
	for _, problem := range importer.ValidatePayload(payload) {
		result.Warnings = append(result.Warnings, problem.Error())
	}
	stats := report.NormalizeStats{Total: len(payload.Entries)}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		w := &importWriter{
			projects: repository.NewSQLiteProjectRepo(tx),
			entries:  repository.NewSQLiteTimeEntryRepo(tx),
			known:    make(map[string]string),
		}
		for i, raw := range payload.Entries {
			entry, ok := report.NormalizeRecord(raw, &stats)
			if !ok {
				continue
			}
			stored, err := w.write(ctx, raw, entry, domain.CoalesceStr(raw.PersonID, userID))
			if err != nil {
				return fmt.Errorf("importing record %d: %w", i, err)
			}
			if stored {
				result.Imported++
			}
		}
		result.ProjectsCreated = w.created
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Excluded = stats.Excluded
	result.Coerced = stats.Coerced
	result.Skipped = result.Total - result.Excluded - result.Imported
	fields["imported"] = result.Imported
	fields["skipped"] = result.Skipped
	fields["excluded_records"] = stats.Excluded
	fields["coerced_fields"] = stats.Coerced
	fields["projects_created"] = result.ProjectsCreated
	return result, nil
}

type importWriter struct {
	projects *repository.SQLiteProjectRepo
	entries  *repository.SQLiteTimeEntryRepo
	// known maps payload project ids to stored project ids.
	known   map[string]string
	created int
}

// write stores one normalized record and reports whether it was new.
func (w *importWriter) write(ctx context.Context, raw importer.RawTimeEntry, e domain.TimeEntry, userID string) (bool, error) {
	id := raw.ID
	if id != "" {
		if _, err := w.entries.GetByID(ctx, id); err == nil {
			return false, nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return false, err
		}
	} else {
		id = uuid.New().String()
	}

	projectID, err := w.resolveProject(ctx, e.ProjectID, e.ProjectName)
	if err != nil {
		return false, err
	}

	// Fractional or out-of-range parts are folded into whole minutes.
	total := int(math.Round(e.TotalMinutes()))
	date, _ := time.Parse(domain.DateLayout, e.Date)
	now := time.Now().UTC()
	return true, w.entries.Create(ctx, &domain.LoggedEntry{
		ID:          id,
		UserID:      userID,
		ProjectID:   projectID,
		ProjectName: e.ProjectName,
		Hours:       total / 60,
		Minutes:     total % 60,
		IsTangible:  e.IsTangible,
		DateOfWork:  date,
		Notes:       raw.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// resolveProject finds the stored project for a payload project, first by id
// and then by name, creating it when neither matches.
func (w *importWriter) resolveProject(ctx context.Context, id, name string) (string, error) {
	if id == "" {
		return "", nil
	}
	if stored, ok := w.known[id]; ok {
		return stored, nil
	}

	p, err := w.projects.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) && name != "" {
		p, err = w.projects.GetByName(ctx, name)
	}
	switch {
	case err == nil:
		w.known[id] = p.ID
		return p.ID, nil
	case !errors.Is(err, repository.ErrNotFound):
		return "", err
	}

	p = &domain.Project{
		ID:        id,
		Name:      domain.CoalesceStr(name, id),
		CreatedAt: time.Now().UTC(),
	}
	if err := w.projects.Create(ctx, p); err != nil {
		return "", fmt.Errorf("creating project %q: %w", p.Name, err)
	}
	w.created++
	w.known[id] = p.ID
	return p.ID, nil
}
