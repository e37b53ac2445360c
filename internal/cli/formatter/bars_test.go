package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func months(n int) *int { return &n }

func TestRenderBars_ScalesToPeak(t *testing.T) {
	out := RenderBars([]domain.BarDatum{
		{Label: "2024-01", Value: 4},
		{Label: "2024-02", Value: 2},
		{Label: "2024-03", Value: 0},
	}, 8)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 8, strings.Count(lines[0], filledBlock))
	assert.Equal(t, 4, strings.Count(lines[1], filledBlock))
	assert.Equal(t, 0, strings.Count(lines[2], filledBlock))
	assert.True(t, strings.HasSuffix(lines[1], "2"))
}

func TestRenderBars_AnnotatesPartialYears(t *testing.T) {
	out := RenderBars([]domain.BarDatum{
		{Label: "2023", Value: 3, Months: months(7)},
		{Label: "2024", Value: 5, Months: months(12)},
		{Label: "2025", Value: 1, Months: months(3)},
	}, 10)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "(7 mo)")
	assert.NotContains(t, lines[1], "mo)")
	assert.Contains(t, lines[2], "(3 mo)")
}

func TestRenderBars_Empty(t *testing.T) {
	assert.Contains(t, RenderBars(nil, 10), "No data")
}
