package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/report"
)

// FormatReport renders a total project report. The detail table is only
// included when showDetails is set; charts follow the report's bucket plan.
func FormatReport(r *report.Report, showDetails bool) string {
	var b strings.Builder

	b.WriteString(Dim(HumanRange(r.From, r.To)) + "\n\n")
	b.WriteString(FormatOverall(r.Overall))

	if showDetails {
		b.WriteString("\n\n" + Header("Projects") + "\n")
		b.WriteString(FormatProjectSummaries(r.Details()))
	}
	if r.Plan.ShowMonthly {
		b.WriteString("\n\n" + Header("Projects per month") + "\n")
		b.WriteString(RenderBars(r.Monthly, DefaultBarWidth))
	}
	if r.Plan.ShowYearly {
		b.WriteString("\n\n" + Header("Projects per year") + "\n")
		b.WriteString(RenderBars(r.Yearly, DefaultBarWidth))
	}
	if n := r.Stats.Excluded; n > 0 {
		b.WriteString("\n\n" + StyleYellow.Render(fmt.Sprintf("%d malformed record(s) skipped", n)))
	}

	return RenderBox("Total project report", b.String())
}

// FormatOverall renders the summary line.
func FormatOverall(o domain.OverallSummary) string {
	return fmt.Sprintf("%s %s    %s %s",
		Dim("Contributing projects"), Bold(fmt.Sprint(o.Count)),
		Dim("Tangible hours"), StyleGreen.Render(o.TotalTangibleHours),
	)
}

// FormatProjectSummaries renders the detail table rows in the order given.
func FormatProjectSummaries(summaries []domain.ProjectSummary) string {
	if len(summaries) == 0 {
		return Dim("No project reached the contribution threshold.")
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		name := s.DisplayName()
		if s.ProjectID == "" {
			name = Dim(name)
		}
		rows = append(rows, []string{name, s.TotalTime, s.TangibleTime})
	}
	return RenderTable([]string{"PROJECT", "TOTAL H", "TANGIBLE H"}, rows, 1, 2)
}
