package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/alexanderramin/contrib/internal/app"
)

// ErrSuperseded is returned for a refresh that finished after a newer one
// had started. Its result must not be shown.
var ErrSuperseded = errors.New("report refresh superseded by a newer request")

// Ticket identifies one refresh request. Later requests get larger tickets.
type Ticket uint64

// Refresher serializes report refreshes on a last-request-wins basis: only
// the result of the most recently started request is delivered.
type Refresher struct {
	reports ReportService
	latest  atomic.Uint64
}

func NewRefresher(reports ReportService) *Refresher {
	return &Refresher{reports: reports}
}

// Begin starts a new request and invalidates every earlier ticket.
func (r *Refresher) Begin() Ticket {
	return Ticket(r.latest.Add(1))
}

// Current reports whether t is still the newest ticket.
func (r *Refresher) Current(t Ticket) bool {
	return uint64(t) == r.latest.Load()
}

// Refresh begins a request and runs it.
func (r *Refresher) Refresh(ctx context.Context, req app.TotalReportRequest) (*app.TotalReportResponse, error) {
	return r.Run(ctx, r.Begin(), req)
}

// Run loads the report for ticket t. It returns ErrSuperseded, and drops both
// result and error, when another request began while this one was loading.
func (r *Refresher) Run(ctx context.Context, t Ticket, req app.TotalReportRequest) (*app.TotalReportResponse, error) {
	resp, err := r.reports.TotalProjectReport(ctx, req)
	if !r.Current(t) {
		return nil, ErrSuperseded
	}
	return resp, err
}
