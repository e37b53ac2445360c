package testutil

import (
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/google/uuid"
)

// now is truncated to the second because timestamps are stored as RFC3339.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Day returns midnight UTC of the given calendar date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Project options
type ProjectOption func(*domain.Project)

func WithCategory(c string) ProjectOption {
	return func(p *domain.Project) {
		p.Category = c
	}
}

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  "test",
		CreatedAt: now(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Profile options
type ProfileOption func(*domain.VolunteerProfile)

func WithCommittedHours(h float64) ProfileOption {
	return func(p *domain.VolunteerProfile) {
		p.WeeklyCommittedHours = h
	}
}

func WithInactive() ProfileOption {
	return func(p *domain.VolunteerProfile) {
		p.Active = false
	}
}

func WithEmail(e string) ProfileOption {
	return func(p *domain.VolunteerProfile) {
		p.Email = e
	}
}

func NewTestProfile(firstName string, opts ...ProfileOption) *domain.VolunteerProfile {
	p := &domain.VolunteerProfile{
		ID:                   uuid.New().String(),
		FirstName:            firstName,
		LastName:             "Tester",
		WeeklyCommittedHours: 10,
		Active:               true,
		CreatedAt:            now(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Entry options
type EntryOption func(*domain.LoggedEntry)

func WithProject(p *domain.Project) EntryOption {
	return func(e *domain.LoggedEntry) {
		e.ProjectID = p.ID
		e.ProjectName = p.Name
	}
}

func WithTime(hours, minutes int) EntryOption {
	return func(e *domain.LoggedEntry) {
		e.Hours = hours
		e.Minutes = minutes
	}
}

func WithTangible(t bool) EntryOption {
	return func(e *domain.LoggedEntry) {
		e.IsTangible = t
	}
}

func WithDate(d time.Time) EntryOption {
	return func(e *domain.LoggedEntry) {
		e.DateOfWork = d
	}
}

func WithNotes(n string) EntryOption {
	return func(e *domain.LoggedEntry) {
		e.Notes = n
	}
}

// NewTestEntry returns a one-hour tangible entry for today with no project.
func NewTestEntry(userID string, opts ...EntryOption) *domain.LoggedEntry {
	ts := now()
	y, m, d := ts.Date()
	e := &domain.LoggedEntry{
		ID:         uuid.New().String(),
		UserID:     userID,
		Hours:      1,
		IsTangible: true,
		DateOfWork: Day(y, m, d),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
