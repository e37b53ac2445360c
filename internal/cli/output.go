package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/utc"
	"github.com/alexanderramin/contrib/internal/app"
	"github.com/alexanderramin/contrib/internal/cli/formatter"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

// outputFormat is a pflag.Value selecting how reports are written.
type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(s string) error {
	switch f := outputFormat(strings.ToLower(s)); f {
	case outputTable, outputJSON, outputYAML:
		*o = f
		return nil
	default:
		return fmt.Errorf("must be one of table, json, yaml")
	}
}

func (o *outputFormat) Type() string { return "format" }

var _ pflag.Value = (*outputFormat)(nil)

// reportDocument is the machine-readable shape of a report. Series the
// bucket plan hides are left out.
type reportDocument struct {
	GeneratedAt utc.Time                `json:"generatedAt" yaml:"generatedAt"`
	From        string                  `json:"from" yaml:"from"`
	To          string                  `json:"to" yaml:"to"`
	Overall     domain.OverallSummary   `json:"overall" yaml:"overall"`
	Projects    []domain.ProjectSummary `json:"projects,omitempty" yaml:"projects,omitempty"`
	Monthly     []domain.BarDatum       `json:"monthly,omitempty" yaml:"monthly,omitempty"`
	Yearly      []domain.BarDatum       `json:"yearly,omitempty" yaml:"yearly,omitempty"`
	Excluded    int                     `json:"excludedRecords" yaml:"excludedRecords"`
	Coerced     int                     `json:"coercedFields" yaml:"coercedFields"`
	Degraded    bool                    `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}

func newReportDocument(resp *app.TotalReportResponse, details bool) reportDocument {
	r := resp.Report
	doc := reportDocument{
		GeneratedAt: utc.Now(),
		From:        r.From.Format(domain.DateLayout),
		To:          r.To.Format(domain.DateLayout),
		Overall:     r.Overall,
		Excluded:    resp.Excluded,
		Coerced:     resp.Coerced,
		Degraded:    resp.Degraded,
	}
	if details {
		doc.Projects = r.Details()
	}
	if r.Plan.ShowMonthly {
		doc.Monthly = r.Monthly
	}
	if r.Plan.ShowYearly {
		doc.Yearly = r.Yearly
	}
	return doc
}

func writeReport(w io.Writer, resp *app.TotalReportResponse, format outputFormat, details bool) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(newReportDocument(resp, details), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case outputYAML:
		data, err := yaml.Marshal(newReportDocument(resp, details))
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(w, renderReport(resp, details))
		return err
	}
}

func renderReport(resp *app.TotalReportResponse, details bool) string {
	out := formatter.FormatReport(resp.Report, details)
	if resp.Degraded {
		out += "\n" + formatter.StyleYellow.Render("Project time could not be loaded; showing your own entries only.")
	}
	return out
}
