package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/contrib/internal/app"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/importer"
	"github.com/alexanderramin/contrib/internal/report"
	"github.com/alexanderramin/contrib/internal/repository"
)

type reportService struct {
	entries  repository.TimeEntryRepo
	observer UseCaseObserver
}

func NewReportService(entries repository.TimeEntryRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

// TotalProjectReport merges the requested users' own time with the time
// other people logged on the requested projects, then builds the report.
// When the per-project list cannot be loaded the report is built from the
// per-user list alone and marked degraded.
func (s *reportService) TotalProjectReport(ctx context.Context, req app.TotalReportRequest) (resp *app.TotalReportResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"from":     req.From.Format(domain.DateLayout),
		"to":       req.To.Format(domain.DateLayout),
		"users":    len(req.UserIDs),
		"projects": len(req.ProjectIDs),
	}
	defer func() {
		observe(ctx, s.observer, "total-project-report", startedAt, err, fields)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	var userEntries []*domain.LoggedEntry
	userEntries, err = s.entries.ListByUsers(ctx, req.UserIDs, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("loading user time entries: %w", err)
	}
	raw := importer.FromLoggedEntries(userEntries)

	degraded := false
	// With no user scope the per-user list already holds everyone's time.
	if len(req.UserIDs) > 0 && len(req.ProjectIDs) > 0 {
		projectEntries, listErr := s.entries.ListByProjectsExcludingUsers(ctx, req.ProjectIDs, req.UserIDs, req.From, req.To)
		if listErr != nil {
			degraded = true
			fields["project_list_error"] = listErr.Error()
		} else {
			raw = append(raw, importer.FromLoggedEntries(projectEntries)...)
		}
	}

	var r *report.Report
	r, err = report.Build(raw, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	fields["records"] = r.Stats.Total
	fields["excluded_records"] = r.Stats.Excluded
	fields["coerced_fields"] = r.Stats.Coerced
	for reason, n := range r.Stats.Reasons {
		fields["excluded_"+reason] = n
	}
	fields["contributing_projects"] = r.Overall.Count
	fields["degraded"] = degraded

	return &app.TotalReportResponse{
		Report:   r,
		Degraded: degraded,
		Excluded: r.Stats.Excluded,
		Coerced:  r.Stats.Coerced,
	}, nil
}
