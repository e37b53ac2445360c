package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/contrib/internal/importer"
	"github.com/alexanderramin/contrib/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `[
	{"_id": "e1", "personId": "u7", "projectId": "api-garden", "projectName": "Garden", "hours": 1, "minutes": 30, "isTangible": true, "dateOfWork": "2024-02-03T00:00:00.000Z"},
	{"_id": "e2", "projectId": "api-garden", "projectName": "Garden", "hours": "2", "minutes": "abc", "isTangible": "false", "dateOfWork": "2024-02-04"},
	{"_id": "e3", "projectId": "", "projectName": "", "hours": 0, "minutes": 20, "isTangible": true, "dateOfWork": "2024-02-05"},
	{"_id": "e4", "projectId": "api-garden", "hours": 1, "dateOfWork": "not a date"}
]`

func writePayload(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestImportFile_StoresWellFormedRecords(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewImportService(r.uow, obs)

	result, err := svc.ImportFile(ctx, writePayload(t, samplePayload), importer.SourceUserList, "me")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Excluded)
	assert.Equal(t, 1, result.Coerced)
	assert.Equal(t, 1, result.ProjectsCreated)
	assert.Zero(t, result.Skipped)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "entries[1].minutes: not a number")
	assert.Contains(t, result.Warnings[1], "entries[3].dateOfWork")

	e1, err := r.entries.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "u7", e1.UserID)
	assert.Equal(t, "api-garden", e1.ProjectID)
	assert.Equal(t, 1, e1.Hours)
	assert.Equal(t, 30, e1.Minutes)
	assert.Equal(t, "2024-02-03", e1.DateOfWork.Format("2006-01-02"))

	e2, err := r.entries.GetByID(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, "me", e2.UserID, "records without personId belong to the importing user")
	assert.Equal(t, 2, e2.Hours)
	assert.Zero(t, e2.Minutes)
	assert.False(t, e2.IsTangible)

	e3, err := r.entries.GetByID(ctx, "e3")
	require.NoError(t, err)
	assert.Empty(t, e3.ProjectID)

	proj, err := r.projects.GetByID(ctx, "api-garden")
	require.NoError(t, err)
	assert.Equal(t, "Garden", proj.Name)

	assert.Equal(t, 1, obs.last().Fields["excluded_records"])
}

func TestImportFile_ReimportSkipsKnownRecords(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(r.uow)
	path := writePayload(t, samplePayload)

	_, err := svc.ImportFile(ctx, path, importer.SourceUserList, "me")
	require.NoError(t, err)

	again, err := svc.ImportFile(ctx, path, importer.SourceUserList, "me")
	require.NoError(t, err)
	assert.Zero(t, again.Imported)
	assert.Equal(t, 3, again.Skipped)
	assert.Zero(t, again.ProjectsCreated)
}

func TestImportPayload_MatchesExistingProjectByName(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	local := testutil.NewTestProject("garden")
	require.NoError(t, r.projects.Create(ctx, local))
	svc := NewImportService(r.uow)

	payload, err := importer.ParsePayload([]byte(samplePayload), importer.SourceProjectList)
	require.NoError(t, err)
	result, err := svc.ImportPayload(ctx, payload, "")
	require.NoError(t, err)
	assert.Zero(t, result.ProjectsCreated)

	e1, err := r.entries.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, local.ID, e1.ProjectID)
}

func TestImportPayload_RecordsWithoutIDGetFreshIDs(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(r.uow)

	payload := &importer.Payload{
		Source: importer.SourceUserList,
		Entries: []importer.RawTimeEntry{
			{Hours: json.Number("1"), DateOfWork: "2024-03-01"},
			{Hours: json.Number("1"), DateOfWork: "2024-03-01"},
		},
	}
	result, err := svc.ImportPayload(ctx, payload, "me")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	all, err := r.entries.ListByUsers(ctx, []string{"me"}, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportFile_RollbackOnEntryCreateFailure(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	// Exec calls: #1 = project create, #2 = entry e1, #3 = entry e2.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     r.db,
		FailOn: 3,
		Err:    fmt.Errorf("injected entry create failure"),
	}
	svc := NewImportService(failUoW)

	_, err := svc.ImportFile(ctx, writePayload(t, samplePayload), importer.SourceUserList, "me")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected entry create failure")

	projects, err := r.projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects, "no projects should exist after rollback")

	all, err := r.entries.ListByUsers(ctx, nil, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, all, "no entries should exist after rollback")
}

func TestImportFile_MissingFile(t *testing.T) {
	r := setupRepos(t)
	svc := NewImportService(r.uow)

	_, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"), importer.SourceUserList, "me")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
