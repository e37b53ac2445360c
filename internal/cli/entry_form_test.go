package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryFormValues_ApplyReplaysThroughReducer(t *testing.T) {
	form := domain.NewEntryForm(fixedNow)
	v := entryValuesFrom(form)
	assert.Equal(t, "2024-06-12", v.date)
	assert.True(t, v.tangible)

	v.hours = "2"
	v.minutes = "15"
	v.projectID = "p1"
	v.notes = "sorting"
	v.tangible = false

	got := v.apply(form)
	assert.True(t, got.Valid())
	assert.Equal(t, "2", got.Hours)
	assert.Equal(t, "15", got.Minutes)
	assert.Equal(t, "p1", got.ProjectID)
	assert.Equal(t, "sorting", got.Notes)
	assert.False(t, got.IsTangible)
	assert.True(t, form.IsTangible, "original form is untouched")
}

func TestEntryFormValues_ApplyRecordsFieldErrors(t *testing.T) {
	form := domain.NewEntryForm(fixedNow)
	v := entryValuesFrom(form)
	v.date = "12/06/2024"
	v.minutes = "75"

	got := v.apply(form)
	assert.False(t, got.Valid())
	assert.Equal(t, "use YYYY-MM-DD format", got.Error(domain.FieldDate))
	assert.Contains(t, got.Error(domain.FieldMinutes), "0 to 59")
}

func TestFieldValidator(t *testing.T) {
	assert.NoError(t, fieldValidator(domain.FieldHours)("8"))
	assert.Error(t, fieldValidator(domain.FieldHours)("25"))
	assert.Error(t, fieldValidator(domain.FieldProject)(""))
}

func TestNewEntryHuhForm(t *testing.T) {
	f := testApp(t)
	ctx := context.Background()

	_, err := newEntryHuhForm(ctx, f.app, &entryFormValues{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no projects yet")

	require.NoError(t, f.projects.Create(ctx, testutil.NewTestProject("Garden")))
	form, err := newEntryHuhForm(ctx, f.app, &entryFormValues{})
	require.NoError(t, err)
	assert.NotNil(t, form)
}

func TestFormErrors_SortedAndJoined(t *testing.T) {
	form := domain.ReduceEntryForm(domain.NewEntryForm(fixedNow), domain.SubmitEntry{})
	err := formErrors(form)
	assert.EqualError(t, err, "invalid entry: project: select a project; time: enter a time greater than zero")
}
