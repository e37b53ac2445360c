package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/contrib/internal/app"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/repository"
	"github.com/alexanderramin/contrib/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingProjectList breaks only the per-project list.
type failingProjectList struct {
	repository.TimeEntryRepo
}

func (failingProjectList) ListByProjectsExcludingUsers(context.Context, []string, []string, time.Time, time.Time) ([]*domain.LoggedEntry, error) {
	return nil, errors.New("project list unavailable")
}

func seedReportData(t *testing.T, r testRepos) (*domain.Project, *domain.Project) {
	t.Helper()
	ctx := context.Background()
	garden := testutil.NewTestProject("Garden")
	library := testutil.NewTestProject("library")
	require.NoError(t, r.projects.Create(ctx, garden))
	require.NoError(t, r.projects.Create(ctx, library))

	jan := testutil.WithDate(testutil.Day(2024, 1, 15))
	entries := []*domain.LoggedEntry{
		testutil.NewTestEntry("u1", testutil.WithProject(garden), testutil.WithTime(1, 0), jan),
		testutil.NewTestEntry("u1", testutil.WithProject(garden), testutil.WithTime(0, 45), testutil.WithTangible(false), jan),
		testutil.NewTestEntry("u1", testutil.WithProject(library), testutil.WithTime(0, 30), jan),
		// Someone else's time on the garden project.
		testutil.NewTestEntry("u2", testutil.WithProject(garden), testutil.WithTime(2, 0), jan),
	}
	for _, e := range entries {
		require.NoError(t, r.entries.Create(ctx, e))
	}
	return garden, library
}

func TestTotalProjectReport_MergesUserAndProjectLists(t *testing.T) {
	r := setupRepos(t)
	garden, _ := seedReportData(t, r)
	obs := &recordingObserver{}
	svc := NewReportService(r.entries, obs)

	resp, err := svc.TotalProjectReport(context.Background(), app.TotalReportRequest{
		From:       testutil.Day(2024, 1, 1),
		To:         testutil.Day(2024, 1, 31),
		UserIDs:    []string{"u1"},
		ProjectIDs: []string{garden.ID},
	})
	require.NoError(t, err)
	assert.False(t, resp.Degraded)

	// Library has 0.5h and falls below the contribution threshold.
	require.Len(t, resp.Report.Projects, 1)
	p := resp.Report.Projects[0]
	assert.Equal(t, garden.ID, p.ProjectID)
	assert.Equal(t, "3.75", p.TotalTime)
	assert.Equal(t, "3.00", p.TangibleTime)
	assert.Equal(t, domain.OverallSummary{Count: 1, TotalTangibleHours: "3.00"}, resp.Report.Overall)

	ev := obs.last()
	assert.Equal(t, "total-project-report", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 4, ev.Fields["records"])
	assert.Equal(t, 0, ev.Fields["excluded_records"])
}

func TestTotalProjectReport_ProjectListFailureDegrades(t *testing.T) {
	r := setupRepos(t)
	garden, _ := seedReportData(t, r)
	svc := NewReportService(failingProjectList{r.entries})

	resp, err := svc.TotalProjectReport(context.Background(), app.TotalReportRequest{
		From:       testutil.Day(2024, 1, 1),
		To:         testutil.Day(2024, 1, 31),
		UserIDs:    []string{"u1"},
		ProjectIDs: []string{garden.ID},
	})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	require.Len(t, resp.Report.Projects, 1)
	assert.Equal(t, "1.75", resp.Report.Projects[0].TotalTime)
}

func TestTotalProjectReport_EmptyRangeYieldsEmptyReport(t *testing.T) {
	r := setupRepos(t)
	svc := NewReportService(r.entries)

	resp, err := svc.TotalProjectReport(context.Background(), app.TotalReportRequest{
		From: testutil.Day(2030, 1, 1),
		To:   testutil.Day(2030, 6, 30),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Report.Projects)
	assert.Equal(t, "0.00", resp.Report.Overall.TotalTangibleHours)
	assert.Zero(t, resp.Report.Overall.Count)
}

func TestTotalProjectReport_InvalidRange(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewReportService(r.entries, obs)

	_, err := svc.TotalProjectReport(context.Background(), app.TotalReportRequest{
		From: testutil.Day(2024, 2, 1),
		To:   testutil.Day(2024, 1, 1),
	})
	var reportErr *app.ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, app.ReportErrInvalidRange, reportErr.Code)
	assert.False(t, obs.last().Success)
}

func TestTotalProjectReport_LongRangeHasSeries(t *testing.T) {
	r := setupRepos(t)
	seedReportData(t, r)
	svc := NewReportService(r.entries)

	resp, err := svc.TotalProjectReport(context.Background(), app.TotalReportRequest{
		From: testutil.Day(2023, 11, 1),
		To:   testutil.Day(2024, 2, 29),
	})
	require.NoError(t, err)
	plan := resp.Report.Plan
	assert.True(t, plan.Bucketed)
	assert.True(t, plan.ShowMonthly)
	assert.True(t, plan.ShowYearly)
	require.Len(t, resp.Report.Monthly, 1)
	assert.Equal(t, "2024-01", resp.Report.Monthly[0].Label)
}
