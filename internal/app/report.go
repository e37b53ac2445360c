package app

import (
	"time"

	"github.com/alexanderramin/contrib/internal/report"
)

// TotalReportRequest selects the time feeding a total project report.
// UserIDs scopes the volunteers whose own time is reported. ProjectIDs adds
// time other people logged on those projects; it is ignored when empty.
type TotalReportRequest struct {
	From       time.Time
	To         time.Time
	UserIDs    []string
	ProjectIDs []string
}

// NewTotalReportRequest returns a request covering the days ending today.
func NewTotalReportRequest(now time.Time, days int) TotalReportRequest {
	y, m, d := now.Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return TotalReportRequest{
		From: to.AddDate(0, 0, -days),
		To:   to,
	}
}

type TotalReportResponse struct {
	Report *report.Report
	// Degraded is set when the per-project list could not be loaded and
	// the report was built from the per-user list alone.
	Degraded bool
	Excluded int
	Coerced  int
}

type ReportErrorCode string

const (
	ReportErrInvalidRange ReportErrorCode = "INVALID_RANGE"
)

type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Validate checks the request before any data is loaded.
func (r TotalReportRequest) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return &ReportError{Code: ReportErrInvalidRange, Message: "from and to dates are required"}
	}
	if r.To.Before(r.From) {
		return &ReportError{
			Code:    ReportErrInvalidRange,
			Message: "to date " + r.To.Format("2006-01-02") + " is before from date " + r.From.Format("2006-01-02"),
		}
	}
	return nil
}
