package domain

// ProjectAggregate accumulates the time logged against one project.
// Tangible fields only ever receive entries that also count toward the totals.
type ProjectAggregate struct {
	ProjectID       string
	ProjectName     string
	Hours           float64
	Minutes         float64
	TangibleHours   float64
	TangibleMinutes float64
}

// TotalDecimal returns total time as decimal hours.
func (a ProjectAggregate) TotalDecimal() float64 {
	return a.Hours + a.Minutes/60
}

// TangibleDecimal returns tangible time as decimal hours.
func (a ProjectAggregate) TangibleDecimal() float64 {
	return a.TangibleHours + a.TangibleMinutes/60
}

// ProjectSummary is a project that met the contribution threshold, with
// times rendered to two decimals.
type ProjectSummary struct {
	ProjectID    string `json:"projectId" yaml:"projectId"`
	ProjectName  string `json:"projectName" yaml:"projectName"`
	TotalTime    string `json:"totalTime" yaml:"totalTime"`
	TangibleTime string `json:"tangibleTime" yaml:"tangibleTime"`
}

// DisplayName is the label for the detail table. Entries without a project
// id render as UnrecordedProjectLabel.
func (s ProjectSummary) DisplayName() string {
	if s.ProjectID == "" {
		return UnrecordedProjectLabel
	}
	return s.ProjectName
}

// TimeBucket groups the contributing projects of one month or year.
type TimeBucket struct {
	TimeRange      string           `json:"timeRange" yaml:"timeRange"`
	ProjectsOfTime []ProjectSummary `json:"projectsOfTime" yaml:"projectsOfTime"`
}

// BarDatum is one bar of a chart series. Value counts contributing projects.
// Months is only set for yearly series.
type BarDatum struct {
	Label  string `json:"label" yaml:"label"`
	Value  int    `json:"value" yaml:"value"`
	Months *int   `json:"months,omitempty" yaml:"months,omitempty"`
}

// OverallSummary is the headline of the total project report.
type OverallSummary struct {
	Count              int    `json:"count" yaml:"count"`
	TotalTangibleHours string `json:"totalTangibleHours" yaml:"totalTangibleHours"`
}

// Granularity selects the bucket size used for trend charts.
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// Valid reports whether g is a known granularity.
func (g Granularity) Valid() bool {
	return g == GranularityMonth || g == GranularityYear
}

// MonthKey returns the YYYY-MM bucket key of a YYYY-MM-DD date.
func MonthKey(date string) string {
	return prefix(date, 7)
}

// YearKey returns the YYYY bucket key of a YYYY-MM-DD date.
func YearKey(date string) string {
	return prefix(date, 4)
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
