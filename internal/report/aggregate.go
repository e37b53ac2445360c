package report

import "github.com/alexanderramin/contrib/internal/domain"

// AggregateSet holds one ProjectAggregate per project id, remembering the
// order in which ids were first seen.
type AggregateSet struct {
	order []string
	byID  map[string]*domain.ProjectAggregate
}

// Aggregate sums entries per project id. The first name seen for an id is
// kept. Tangible totals only include entries flagged tangible. The per-project
// totals do not depend on input order.
func Aggregate(entries []domain.TimeEntry) *AggregateSet {
	set := &AggregateSet{byID: make(map[string]*domain.ProjectAggregate)}
	for _, e := range entries {
		agg, ok := set.byID[e.ProjectID]
		if !ok {
			agg = &domain.ProjectAggregate{
				ProjectID:   e.ProjectID,
				ProjectName: e.ProjectName,
			}
			set.byID[e.ProjectID] = agg
			set.order = append(set.order, e.ProjectID)
		}
		if e.IsTangible {
			agg.TangibleHours += e.Hours
			agg.TangibleMinutes += e.Minutes
		}
		agg.Hours += e.Hours
		agg.Minutes += e.Minutes
	}
	return set
}

// Len returns the number of distinct projects.
func (s *AggregateSet) Len() int {
	return len(s.order)
}

// Get returns the aggregate for a project id.
func (s *AggregateSet) Get(projectID string) (domain.ProjectAggregate, bool) {
	agg, ok := s.byID[projectID]
	if !ok {
		return domain.ProjectAggregate{}, false
	}
	return *agg, true
}

// Values returns copies of the aggregates in first-seen order.
func (s *AggregateSet) Values() []domain.ProjectAggregate {
	out := make([]domain.ProjectAggregate, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}
