package service

import (
	"context"
	"time"

	"github.com/alexanderramin/contrib/internal/app"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/importer"
)

type ReportService interface {
	TotalProjectReport(ctx context.Context, req app.TotalReportRequest) (*app.TotalReportResponse, error)
}

type EntryService interface {
	Log(ctx context.Context, userID string, form domain.EntryForm) (*domain.LoggedEntry, error)
	GetByID(ctx context.Context, id string) (*domain.LoggedEntry, error)
	List(ctx context.Context, userIDs []string, from, to time.Time) ([]*domain.LoggedEntry, error)
	ToggleTangible(ctx context.Context, id string) (*domain.LoggedEntry, error)
	Delete(ctx context.Context, id string) error
}

type ImportService interface {
	ImportFile(ctx context.Context, path string, source importer.Source, userID string) (*app.ImportResult, error)
	ImportPayload(ctx context.Context, payload *importer.Payload, userID string) (*app.ImportResult, error)
}

type ProjectService interface {
	Create(ctx context.Context, name, category string) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProfileService interface {
	Create(ctx context.Context, p *domain.VolunteerProfile) error
	List(ctx context.Context, activeOnly bool) ([]*domain.VolunteerProfile, error)
}

type WeeklyService interface {
	Summary(ctx context.Context, weekStart time.Time) ([]domain.WeeklyHours, error)
}
