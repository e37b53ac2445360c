package app

import (
	"context"
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/importer"
)

type TotalReportUseCase interface {
	TotalProjectReport(ctx context.Context, req TotalReportRequest) (*TotalReportResponse, error)
}

type LogEntryUseCase interface {
	Log(ctx context.Context, userID string, form domain.EntryForm) (*domain.LoggedEntry, error)
}

type ImportResult struct {
	Source          importer.Source
	Total           int
	Imported        int
	Skipped         int
	Excluded        int
	Coerced         int
	ProjectsCreated int
	// Warnings describes each record problem found before import.
	Warnings []string
}

type ImportEntriesUseCase interface {
	ImportFile(ctx context.Context, path string, source importer.Source, userID string) (*ImportResult, error)
}

type WeeklySummaryUseCase interface {
	Summary(ctx context.Context, weekStart time.Time) ([]domain.WeeklyHours, error)
}
