package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formToday = time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

func reduceAll(state EntryForm, events ...EntryFormEvent) EntryForm {
	for _, ev := range events {
		state = ReduceEntryForm(state, ev)
	}
	return state
}

func TestNewEntryForm_Defaults(t *testing.T) {
	f := NewEntryForm(formToday)
	assert.Equal(t, "2024-05-06", f.Date)
	assert.True(t, f.IsTangible)
	assert.Empty(t, f.Errors())
	assert.False(t, f.Valid(), "no project and zero time")
}

func TestReduceEntryForm_SetDate(t *testing.T) {
	f := ReduceEntryForm(NewEntryForm(formToday), SetDate{Value: "06/05/2024"})
	assert.Equal(t, "use YYYY-MM-DD format", f.Error(FieldDate))

	f = ReduceEntryForm(f, SetDate{Value: "2024-05-01"})
	assert.Empty(t, f.Error(FieldDate))
	assert.Equal(t, "2024-05-01", f.Date)

	f = ReduceEntryForm(f, SetDate{Value: ""})
	assert.Equal(t, "date is required", f.Error(FieldDate))
}

func TestReduceEntryForm_SetHoursAndMinutes(t *testing.T) {
	f := ReduceEntryForm(NewEntryForm(formToday), SetHours{Value: "25"})
	assert.NotEmpty(t, f.Error(FieldHours))

	f = ReduceEntryForm(f, SetHours{Value: "2"})
	assert.Empty(t, f.Error(FieldHours))

	f = ReduceEntryForm(f, SetMinutes{Value: "60"})
	assert.NotEmpty(t, f.Error(FieldMinutes))

	f = ReduceEntryForm(f, SetMinutes{Value: "-1"})
	assert.NotEmpty(t, f.Error(FieldMinutes))

	f = ReduceEntryForm(f, SetMinutes{Value: "30"})
	assert.Empty(t, f.Error(FieldMinutes))
}

func TestReduceEntryForm_DoesNotMutatePreviousState(t *testing.T) {
	before := ReduceEntryForm(NewEntryForm(formToday), SetHours{Value: "abc"})
	after := ReduceEntryForm(before, SetHours{Value: "1"})

	assert.NotEmpty(t, before.Error(FieldHours), "earlier state keeps its error")
	assert.Empty(t, after.Error(FieldHours))
	assert.Equal(t, "abc", before.Hours)
}

func TestReduceEntryForm_ToggleTangible(t *testing.T) {
	f := NewEntryForm(formToday)
	f = ReduceEntryForm(f, ToggleTangible{})
	assert.False(t, f.IsTangible)
	f = ReduceEntryForm(f, ToggleTangible{})
	assert.True(t, f.IsTangible)
}

func TestReduceEntryForm_SubmitFlagsZeroTime(t *testing.T) {
	f := reduceAll(NewEntryForm(formToday), SetProject{ProjectID: "P1"}, SubmitEntry{})
	assert.True(t, f.Submitted)
	assert.Equal(t, "enter a time greater than zero", f.Error(FieldTime))

	f = ReduceEntryForm(f, SetMinutes{Value: "15"})
	assert.Empty(t, f.Error(FieldTime), "time error clears once a duration is entered")
}

func TestReduceEntryForm_SubmitCapsTotalAtOneDay(t *testing.T) {
	f := reduceAll(NewEntryForm(formToday),
		SetProject{ProjectID: "P1"}, SetHours{Value: "24"}, SetMinutes{Value: "59"}, SubmitEntry{})
	assert.Empty(t, f.Error(FieldHours))
	assert.Empty(t, f.Error(FieldMinutes))
	assert.Equal(t, "enter at most 24h in one entry", f.Error(FieldTime))
	assert.False(t, f.Valid())

	f = ReduceEntryForm(f, SetMinutes{Value: "0"})
	assert.Empty(t, f.Error(FieldTime), "exactly 24h is allowed")
	assert.True(t, f.Valid())
}

func TestReduceEntryForm_SubmitFlagsMissingProject(t *testing.T) {
	f := reduceAll(NewEntryForm(formToday), SetHours{Value: "1"}, SubmitEntry{})
	assert.Equal(t, "select a project", f.Error(FieldProject))
	assert.False(t, f.Valid())
}

func TestEntryForm_Entry(t *testing.T) {
	f := reduceAll(NewEntryForm(formToday),
		SetProject{ProjectID: "P1"},
		SetHours{Value: "1"},
		SetMinutes{Value: "45"},
		SetNotes{Value: "wrote docs"},
		ToggleTangible{},
	)
	require.True(t, f.Valid())

	e, err := f.Entry("user-1", "Alpha")
	require.NoError(t, err)
	assert.Equal(t, "user-1", e.UserID)
	assert.Equal(t, "P1", e.ProjectID)
	assert.Equal(t, "Alpha", e.ProjectName)
	assert.Equal(t, 1, e.Hours)
	assert.Equal(t, 45, e.Minutes)
	assert.False(t, e.IsTangible)
	assert.Equal(t, "wrote docs", e.Notes)
	assert.Equal(t, "2024-05-06", e.DateOfWork.Format(DateLayout))
}

func TestEntryForm_Entry_Invalid(t *testing.T) {
	f := ReduceEntryForm(NewEntryForm(formToday), SetDate{Value: "nope"})
	_, err := f.Entry("user-1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date: use YYYY-MM-DD format")
	assert.Contains(t, err.Error(), "project: select a project")
}
