package formatter

import (
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
)

// FormatEntryList renders logged entries, coloring dates by recency.
func FormatEntryList(entries []*domain.LoggedEntry, now time.Time) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		style := RecencyStyle(domain.EntryRecency(e.DateOfWork, now))
		project := e.ProjectName
		if e.ProjectID == "" && project == "" {
			project = Dim(domain.UnrecordedProjectLabel)
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			style.Render(RelativeDateFrom(e.DateOfWork, now)),
			project,
			FormatMinutes(e.Hours*60 + e.Minutes),
			TangibleBadge(e.IsTangible),
			Dim(e.Notes),
		})
	}
	table := RenderTable([]string{"ID", "DATE", "PROJECT", "TIME", "KIND", "NOTES"}, rows, 3)
	return RenderBox("Time entries", table)
}
