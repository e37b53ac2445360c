package report

import (
	"sort"
	"strconv"

	"github.com/alexanderramin/contrib/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Summarize counts contributing projects and totals their tangible time.
func Summarize(summaries []domain.ProjectSummary) domain.OverallSummary {
	var tangible float64
	for _, s := range summaries {
		v, err := strconv.ParseFloat(s.TangibleTime, 64)
		if err != nil {
			continue
		}
		tangible += v
	}
	return domain.OverallSummary{
		Count:              len(summaries),
		TotalTangibleHours: formatHours(tangible),
	}
}

// SortByProjectName returns a copy of summaries ordered by project name,
// ignoring case. Ties keep their original order.
func SortByProjectName(summaries []domain.ProjectSummary) []domain.ProjectSummary {
	sorted := make([]domain.ProjectSummary, len(summaries))
	copy(sorted, summaries)

	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		return col.CompareString(sorted[i].ProjectName, sorted[j].ProjectName) < 0
	})
	return sorted
}
