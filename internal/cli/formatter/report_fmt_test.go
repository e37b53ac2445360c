package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/alexanderramin/contrib/internal/report"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *report.Report {
	return &report.Report{
		From:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		To:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Overall: domain.OverallSummary{Count: 2, TotalTangibleHours: "4.50"},
		Projects: []domain.ProjectSummary{
			{ProjectID: "P2", ProjectName: "zoo cleanup", TotalTime: "3.00", TangibleTime: "3.00"},
			{ProjectID: "", ProjectName: "", TotalTime: "2.00", TangibleTime: "1.50"},
		},
		Plan:    report.BucketPlan{Bucketed: true, ShowMonthly: true, ShowYearly: true},
		Monthly: []domain.BarDatum{{Label: "2023-06", Value: 1}, {Label: "2024-02", Value: 2}},
		Yearly:  []domain.BarDatum{{Label: "2023", Value: 1, Months: months(7)}, {Label: "2024", Value: 2, Months: months(3)}},
	}
}

func TestFormatReport_Summary(t *testing.T) {
	out := FormatReport(sampleReport(), false)

	assert.Contains(t, out, "TOTAL PROJECT REPORT")
	assert.Contains(t, out, "Jun 1, 2023 – Mar 1, 2024")
	assert.Contains(t, out, "Contributing projects 2")
	assert.Contains(t, out, "4.50")
	assert.NotContains(t, out, "TANGIBLE H", "detail table is hidden by default")
	assert.Contains(t, out, "PROJECTS PER MONTH")
	assert.Contains(t, out, "PROJECTS PER YEAR")
	assert.Contains(t, out, "(7 mo)")
}

func TestFormatReport_Details(t *testing.T) {
	out := FormatReport(sampleReport(), true)

	assert.Contains(t, out, "TANGIBLE H")
	assert.Contains(t, out, domain.UnrecordedProjectLabel)
	assert.Contains(t, out, "zoo cleanup")
}

func TestFormatReport_GatedCharts(t *testing.T) {
	r := sampleReport()
	r.Plan = report.BucketPlan{}
	r.Stats = report.NormalizeStats{Excluded: 3}

	out := FormatReport(r, false)
	assert.NotContains(t, out, "PER MONTH")
	assert.NotContains(t, out, "PER YEAR")
	assert.Contains(t, out, "3 malformed record(s) skipped")
}

func TestFormatProjectSummaries_Empty(t *testing.T) {
	assert.Contains(t, FormatProjectSummaries(nil), "contribution threshold")
}
