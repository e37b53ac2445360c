package formatter

import (
	"github.com/alexanderramin/contrib/internal/domain"
)

// FormatProjectList renders projects inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		category := Dim("--")
		if p.Category != "" {
			category = StylePurple.Render(p.Category)
		}
		rows = append(rows, []string{TruncID(p.ID), Bold(p.Name), category})
	}
	return RenderBox("Projects", RenderTable([]string{"ID", "NAME", "CATEGORY"}, rows))
}

// FormatProfileList renders volunteer profiles inside a bordered box.
func FormatProfileList(profiles []*domain.VolunteerProfile) string {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		status := StyleGreen.Render("● active")
		if !p.Active {
			status = Dim("○ inactive")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.FullName()),
			Dim(p.Email),
			FormatHours(p.WeeklyCommittedHours),
			status,
		})
	}
	return RenderBox("Volunteers", RenderTable([]string{"ID", "NAME", "EMAIL", "WEEKLY H", "STATUS"}, rows, 3))
}
