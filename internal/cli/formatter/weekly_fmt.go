package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
)

// FormatWeekly renders logged versus committed hours per volunteer.
func FormatWeekly(weekStart time.Time, rows []domain.WeeklyHours) string {
	title := "Week of " + weekStart.Format("Jan 2, 2006")
	if len(rows) == 0 {
		return RenderBox(title, Dim("No active volunteers."))
	}

	table := make([][]string, 0, len(rows))
	met := 0
	for _, w := range rows {
		pct := 1.0
		if w.Committed > 0 {
			pct = w.Logged / w.Committed
		}
		mark := StyleRed.Render("✖")
		if w.MetCommitment() {
			mark = StyleGreen.Render("✔")
			met++
		}
		table = append(table, []string{
			w.Profile.FullName(),
			FormatHours(w.Logged),
			FormatHours(w.Committed),
			RenderProgress(pct, 10),
			mark,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"VOLUNTEER", "LOGGED", "COMMITTED", "PROGRESS", ""}, table, 1, 2))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d of %d met their commitment", met, len(rows))))
	return RenderBox(title, b.String())
}
