package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// DefaultBarWidth is the width of the longest bar in a chart.
const DefaultBarWidth = 30

// RenderBars draws a horizontal bar chart, one row per datum, with bars
// scaled to the largest value. Yearly bars covering only part of a year are
// annotated with the number of months they span.
func RenderBars(data []domain.BarDatum, width int) string {
	if len(data) == 0 {
		return Dim("No data for this range.")
	}

	labelWidth, peak := 0, 0
	for _, d := range data {
		labelWidth = max(labelWidth, lipgloss.Width(d.Label))
		peak = max(peak, d.Value)
	}

	var b strings.Builder
	for _, d := range data {
		pct := 0.0
		if peak > 0 {
			pct = float64(d.Value) / float64(peak)
		}
		label := d.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(d.Label))
		b.WriteString(fmt.Sprintf("%s  %s %s", StyleFg.Render(label), RenderCompactBar(pct, width, d.Value == 0), Bold(fmt.Sprint(d.Value))))
		if d.Months != nil && *d.Months != 12 {
			b.WriteString(Dim(fmt.Sprintf("  (%d mo)", *d.Months)))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
