package report

import (
	"testing"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterContributions_ThresholdBoundary(t *testing.T) {
	aggs := []domain.ProjectAggregate{
		{ProjectID: "exact", ProjectName: "Exact", Minutes: 60},
		{ProjectID: "split", ProjectName: "Split", Hours: 0.5, Minutes: 30},
		{ProjectID: "short", ProjectName: "Short", Minutes: 59},
		{ProjectID: "almost", ProjectName: "Almost", Hours: 0.999},
	}

	got := FilterContributions(aggs)
	require.Len(t, got, 2)
	assert.Equal(t, "exact", got[0].ProjectID)
	assert.Equal(t, "1.00", got[0].TotalTime)
	assert.Equal(t, "split", got[1].ProjectID)
}

func TestFilterContributions_FormatsTwoDecimals(t *testing.T) {
	got := FilterContributions([]domain.ProjectAggregate{
		{ProjectID: "P1", ProjectName: "Alpha", Hours: 2, Minutes: 20, TangibleMinutes: 10},
	})
	require.Len(t, got, 1)
	assert.Equal(t, domain.ProjectSummary{
		ProjectID:    "P1",
		ProjectName:  "Alpha",
		TotalTime:    "2.33",
		TangibleTime: "0.17",
	}, got[0])
}

func TestFilterContributions_HalfCentRoundsUp(t *testing.T) {
	got := FilterContributions([]domain.ProjectAggregate{
		{ProjectID: "P1", ProjectName: "Alpha", Hours: 1, Minutes: 7.5, TangibleMinutes: 7.5},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "1.13", got[0].TotalTime)
	assert.Equal(t, "0.13", got[0].TangibleTime)
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1.125, "1.13"},
		{0.125, "0.13"},
		{0.375, "0.38"},
		{2.5, "2.50"},
		{2.333333, "2.33"},
		// 1.005 is stored just below the tie and stays down.
		{1.005, "1.00"},
		{99.875, "99.88"},
		{0.995, "0.99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatHours(tt.in), "formatHours(%v)", tt.in)
	}
}

func TestFilterContributions_Empty(t *testing.T) {
	assert.Equal(t, []domain.ProjectSummary{}, FilterContributions(nil))
}
