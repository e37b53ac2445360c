// Package report computes the total project report: per-project time totals
// above the contribution threshold and monthly/yearly participation series.
// Everything here is pure and synchronous.
package report

import (
	"fmt"
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/importer"
)

// Report is the rendered-ready result of one report build.
type Report struct {
	From     time.Time               `json:"from" yaml:"from"`
	To       time.Time               `json:"to" yaml:"to"`
	Overall  domain.OverallSummary   `json:"overall" yaml:"overall"`
	Projects []domain.ProjectSummary `json:"projects" yaml:"projects"`
	Plan     BucketPlan              `json:"plan" yaml:"plan"`
	Monthly  []domain.BarDatum       `json:"monthly,omitempty" yaml:"monthly,omitempty"`
	Yearly   []domain.BarDatum       `json:"yearly,omitempty" yaml:"yearly,omitempty"`
	Stats    NormalizeStats          `json:"-" yaml:"-"`
}

// Details returns the contributing projects sorted for the detail table.
func (r *Report) Details() []domain.ProjectSummary {
	return SortByProjectName(r.Projects)
}

// Build runs the full pipeline over raw records for the range [start, end].
// No records is a valid input and yields an empty report.
func Build(raw []importer.RawTimeEntry, start, end time.Time) (*Report, error) {
	entries, stats := Normalize(raw)

	projects := FilterContributions(Aggregate(entries).Values())
	r := &Report{
		From:     start,
		To:       end,
		Overall:  Summarize(projects),
		Projects: projects,
		Plan:     PlanBuckets(start, end),
		Stats:    stats,
	}
	if !r.Plan.Bucketed {
		return r, nil
	}

	monthly, err := Bucket(entries, domain.GranularityMonth)
	if err != nil {
		return nil, fmt.Errorf("bucketing by month: %w", err)
	}
	yearly, err := Bucket(entries, domain.GranularityYear)
	if err != nil {
		return nil, fmt.Errorf("bucketing by year: %w", err)
	}
	SortBuckets(monthly)
	SortBuckets(yearly)

	r.Monthly = BuildBarSeries(monthly, false, start, end)
	r.Yearly = BuildBarSeries(yearly, true, start, end)
	return r, nil
}
