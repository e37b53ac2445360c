package domain

import "time"

// DateLayout is the YYYY-MM-DD layout used for work dates.
const DateLayout = "2006-01-02"

// TimeEntry is the canonical, normalized form of a logged block of work.
// Date keeps the YYYY-MM-DD string so bucket keys can be taken by prefix.
type TimeEntry struct {
	ProjectID   string
	ProjectName string
	Hours       float64
	Minutes     float64
	IsTangible  bool
	Date        string
}

// TotalMinutes returns hours and minutes folded into minutes.
func (e TimeEntry) TotalMinutes() float64 {
	return e.Hours*60 + e.Minutes
}

// LoggedEntry is a time entry as stored locally.
type LoggedEntry struct {
	ID          string
	UserID      string
	ProjectID   string
	ProjectName string
	Hours       int
	Minutes     int
	IsTangible  bool
	DateOfWork  time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToTimeEntry converts a stored entry into the canonical report shape.
func (e *LoggedEntry) ToTimeEntry() TimeEntry {
	return TimeEntry{
		ProjectID:   e.ProjectID,
		ProjectName: e.ProjectName,
		Hours:       float64(e.Hours),
		Minutes:     float64(e.Minutes),
		IsTangible:  e.IsTangible,
		Date:        e.DateOfWork.Format(DateLayout),
	}
}

// Recency buckets an entry by how many days ago the work happened.
type Recency int

const (
	RecencyToday     Recency = 1
	RecencyYesterday Recency = 2
	RecencyTwoDays   Recency = 3
	RecencyThreeDays Recency = 4
	RecencyOlder     Recency = 7
)

// EntryRecency reports how recent dateOfWork is relative to now, counted in
// whole calendar days in now's location. Future dates count as today.
func EntryRecency(dateOfWork, now time.Time) Recency {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	wy, wm, wd := dateOfWork.Date()
	day := time.Date(wy, wm, wd, 0, 0, 0, 0, now.Location())

	daysPast := int(today.Sub(day).Hours() / 24)
	switch {
	case daysPast <= 0:
		return RecencyToday
	case daysPast == 1:
		return RecencyYesterday
	case daysPast == 2:
		return RecencyTwoDays
	case daysPast == 3:
		return RecencyThreeDays
	default:
		return RecencyOlder
	}
}

// ParseWorkDate reads the calendar date at the start of s, which may be a
// bare YYYY-MM-DD or a full RFC 3339 timestamp. It returns the date in
// YYYY-MM-DD form.
func ParseWorkDate(s string) (string, bool) {
	if len(s) < len(DateLayout) {
		return "", false
	}
	day := s[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, day); err != nil {
		return "", false
	}
	return day, true
}
