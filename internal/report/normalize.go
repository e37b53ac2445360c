package report

import (
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/importer"
)

// Exclusion reasons recorded in NormalizeStats.
const (
	ReasonMissingDate = "missing_date"
	ReasonInvalidDate = "invalid_date"
	ReasonMissingTime = "missing_time"
)

// NormalizeStats counts what normalization dropped or repaired so callers can
// surface it to logs without failing the report.
type NormalizeStats struct {
	Total    int
	Excluded int
	Coerced  int
	Reasons  map[string]int
}

func (s *NormalizeStats) exclude(reason string) {
	s.Excluded++
	if s.Reasons == nil {
		s.Reasons = make(map[string]int)
	}
	s.Reasons[reason]++
}

// Normalize maps raw API records to canonical time entries. Records without a
// usable work date, or with neither hours nor minutes, are excluded and
// counted. Unreadable numbers are coerced to zero and counted.
func Normalize(raw []importer.RawTimeEntry) ([]domain.TimeEntry, NormalizeStats) {
	stats := NormalizeStats{Total: len(raw)}
	entries := make([]domain.TimeEntry, 0, len(raw))

	for _, r := range raw {
		if e, ok := NormalizeRecord(r, &stats); ok {
			entries = append(entries, e)
		}
	}
	return entries, stats
}

// NormalizeRecord maps a single record, recording exclusions and coercions
// in stats. It does not touch stats.Total.
func NormalizeRecord(r importer.RawTimeEntry, stats *NormalizeStats) (domain.TimeEntry, bool) {
	date := domain.CoalesceStr(r.DateOfWork, r.Date)
	if date == "" {
		stats.exclude(ReasonMissingDate)
		return domain.TimeEntry{}, false
	}
	day, ok := domain.ParseWorkDate(date)
	if !ok {
		stats.exclude(ReasonInvalidDate)
		return domain.TimeEntry{}, false
	}
	if r.Hours == nil && r.Minutes == nil {
		stats.exclude(ReasonMissingTime)
		return domain.TimeEntry{}, false
	}

	return domain.TimeEntry{
		ProjectID:   r.ProjectID,
		ProjectName: r.ProjectName,
		Hours:       coerce(r.Hours, stats),
		Minutes:     coerce(r.Minutes, stats),
		IsTangible:  domain.ParseFlag(r.IsTangible),
		Date:        day,
	}, true
}

// coerce reads a numeric field. A missing field is a plain zero; a present
// but unreadable one is zero and counted.
func coerce(v any, stats *NormalizeStats) float64 {
	if v == nil {
		return 0
	}
	res := domain.ParseNumber(v)
	if res.Fallback {
		stats.Coerced++
	}
	return res.Value
}
