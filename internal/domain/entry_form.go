package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// EntryField names an input of the time entry form.
type EntryField string

const (
	FieldDate    EntryField = "date"
	FieldHours   EntryField = "hours"
	FieldMinutes EntryField = "minutes"
	FieldProject EntryField = "project"
	FieldNotes   EntryField = "notes"
	// FieldTime carries the cross-field rule that the total lies in (0, 24h].
	FieldTime EntryField = "time"
)

const (
	maxEntryHours   = 24
	maxEntryMinutes = 59
)

// EntryForm is the state of the time entry form. Values are never mutated in
// place: ReduceEntryForm returns a new EntryForm for every event.
type EntryForm struct {
	Date       string
	Hours      string
	Minutes    string
	ProjectID  string
	Notes      string
	IsTangible bool
	Submitted  bool

	errs map[EntryField]string
}

// NewEntryForm returns an empty form dated on today.
func NewEntryForm(today time.Time) EntryForm {
	return EntryForm{
		Date:       today.Format(DateLayout),
		Hours:      "0",
		Minutes:    "0",
		IsTangible: true,
	}
}

// EntryFormEvent is one edit applied to an EntryForm.
type EntryFormEvent interface {
	isEntryFormEvent()
}

type (
	SetDate        struct{ Value string }
	SetHours       struct{ Value string }
	SetMinutes     struct{ Value string }
	SetProject     struct{ ProjectID string }
	SetNotes       struct{ Value string }
	ToggleTangible struct{}
	SubmitEntry    struct{}
)

func (SetDate) isEntryFormEvent()        {}
func (SetHours) isEntryFormEvent()       {}
func (SetMinutes) isEntryFormEvent()     {}
func (SetProject) isEntryFormEvent()     {}
func (SetNotes) isEntryFormEvent()       {}
func (ToggleTangible) isEntryFormEvent() {}
func (SubmitEntry) isEntryFormEvent()    {}

// ReduceEntryForm applies ev to state and returns the resulting form.
func ReduceEntryForm(state EntryForm, ev EntryFormEvent) EntryForm {
	switch e := ev.(type) {
	case SetDate:
		state.Date = strings.TrimSpace(e.Value)
		return state.withFieldError(FieldDate, state.Date)
	case SetHours:
		state.Hours = strings.TrimSpace(e.Value)
		return state.withFieldError(FieldHours, state.Hours).withTimeError()
	case SetMinutes:
		state.Minutes = strings.TrimSpace(e.Value)
		return state.withFieldError(FieldMinutes, state.Minutes).withTimeError()
	case SetProject:
		state.ProjectID = strings.TrimSpace(e.ProjectID)
		return state.withFieldError(FieldProject, state.ProjectID)
	case SetNotes:
		state.Notes = e.Value
		return state
	case ToggleTangible:
		state.IsTangible = !state.IsTangible
		return state
	case SubmitEntry:
		state.Submitted = true
		state = state.withFieldError(FieldDate, state.Date)
		state = state.withFieldError(FieldHours, state.Hours)
		state = state.withFieldError(FieldMinutes, state.Minutes)
		state = state.withFieldError(FieldProject, state.ProjectID)
		return state.withTimeError()
	default:
		return state
	}
}

// Error returns the validation message of field, or "".
func (f EntryForm) Error(field EntryField) string {
	return f.errs[field]
}

// Errors returns a copy of all validation messages keyed by field.
func (f EntryForm) Errors() map[EntryField]string {
	out := make(map[EntryField]string, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Valid reports whether every field passes validation, whether or not the
// corresponding events were applied.
func (f EntryForm) Valid() bool {
	submitted := ReduceEntryForm(f, SubmitEntry{})
	return len(submitted.errs) == 0
}

// Entry converts a valid form into a LoggedEntry for userID.
func (f EntryForm) Entry(userID, projectName string) (*LoggedEntry, error) {
	checked := ReduceEntryForm(f, SubmitEntry{})
	if len(checked.errs) > 0 {
		fields := make([]string, 0, len(checked.errs))
		for field, msg := range checked.errs {
			fields = append(fields, fmt.Sprintf("%s: %s", field, msg))
		}
		sort.Strings(fields)
		return nil, fmt.Errorf("invalid time entry: %s", strings.Join(fields, "; "))
	}

	date, _ := time.Parse(DateLayout, f.Date)
	hours, _ := strconv.Atoi(f.Hours)
	minutes, _ := strconv.Atoi(f.Minutes)
	return &LoggedEntry{
		UserID:      userID,
		ProjectID:   f.ProjectID,
		ProjectName: projectName,
		Hours:       hours,
		Minutes:     minutes,
		IsTangible:  f.IsTangible,
		DateOfWork:  date,
		Notes:       f.Notes,
	}, nil
}

// ValidateEntryField checks a single raw field value.
func ValidateEntryField(field EntryField, value string) error {
	switch field {
	case FieldDate:
		if value == "" {
			return errors.New("date is required")
		}
		if _, err := time.Parse(DateLayout, value); err != nil {
			return errors.New("use YYYY-MM-DD format")
		}
	case FieldHours:
		return validateBoundedInt(value, maxEntryHours)
	case FieldMinutes:
		return validateBoundedInt(value, maxEntryMinutes)
	case FieldProject:
		if value == "" {
			return errors.New("select a project")
		}
	}
	return nil
}

func validateBoundedInt(value string, max int) error {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > max {
		return fmt.Errorf("enter a whole number from 0 to %d", max)
	}
	return nil
}

func (f EntryForm) withFieldError(field EntryField, value string) EntryForm {
	var msg string
	if err := ValidateEntryField(field, value); err != nil {
		msg = err.Error()
	}
	return f.withError(field, msg)
}

// withTimeError re-checks the total once the form has been submitted, so a
// fresh form does not complain before the user has typed anything.
func (f EntryForm) withTimeError() EntryForm {
	if !f.Submitted {
		return f
	}
	var msg string
	if f.errs[FieldHours] == "" && f.errs[FieldMinutes] == "" {
		h, _ := strconv.Atoi(f.Hours)
		m, _ := strconv.Atoi(f.Minutes)
		switch total := h*60 + m; {
		case total <= 0:
			msg = "enter a time greater than zero"
		case total > maxEntryHours*60:
			msg = fmt.Sprintf("enter at most %dh in one entry", maxEntryHours)
		}
	}
	return f.withError(FieldTime, msg)
}

func (f EntryForm) withError(field EntryField, msg string) EntryForm {
	if msg == "" && f.errs[field] == "" {
		return f
	}
	next := make(map[EntryField]string, len(f.errs)+1)
	for k, v := range f.errs {
		next[k] = v
	}
	if msg == "" {
		delete(next, field)
	} else {
		next[field] = msg
	}
	f.errs = next
	return f
}
