package report

import (
	"testing"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	got := Summarize([]domain.ProjectSummary{
		{ProjectID: "P1", TangibleTime: "0.75"},
		{ProjectID: "P2", TangibleTime: "1.50"},
		{ProjectID: "P3", TangibleTime: "bogus"},
	})
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, "2.25", got.TotalTangibleHours)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, domain.OverallSummary{Count: 0, TotalTangibleHours: "0.00"}, Summarize(nil))
}

func TestSortByProjectName_IgnoresCase(t *testing.T) {
	in := []domain.ProjectSummary{
		{ProjectID: "3", ProjectName: "charlie"},
		{ProjectID: "1", ProjectName: "Beta"},
		{ProjectID: "2", ProjectName: "alpha"},
	}

	got := SortByProjectName(in)
	assert.Equal(t, []string{"2", "1", "3"}, ids(got))
	assert.Equal(t, "3", in[0].ProjectID, "input is left untouched")
}

func TestSortByProjectName_StableForEqualNames(t *testing.T) {
	got := SortByProjectName([]domain.ProjectSummary{
		{ProjectID: "a", ProjectName: "Garden"},
		{ProjectID: "b", ProjectName: "garden"},
	})
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func ids(s []domain.ProjectSummary) []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.ProjectID
	}
	return out
}
