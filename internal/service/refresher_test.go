package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/contrib/internal/app"
	"github.com/alexanderramin/contrib/internal/report"
	"github.com/alexanderramin/contrib/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedReports blocks each call until its request's From day is released.
type gatedReports struct {
	started chan app.TotalReportRequest
	release map[int]chan struct{}
}

func (g *gatedReports) TotalProjectReport(ctx context.Context, req app.TotalReportRequest) (*app.TotalReportResponse, error) {
	g.started <- req
	<-g.release[req.From.Day()]
	return &app.TotalReportResponse{Report: &report.Report{From: req.From, To: req.To}}, nil
}

func TestRefresher_StaleResultDiscarded(t *testing.T) {
	gate := &gatedReports{
		started: make(chan app.TotalReportRequest, 2),
		release: map[int]chan struct{}{1: make(chan struct{}), 2: make(chan struct{})},
	}
	r := NewRefresher(gate)
	ctx := context.Background()

	type outcome struct {
		resp *app.TotalReportResponse
		err  error
	}
	first := make(chan outcome, 1)
	second := make(chan outcome, 1)

	go func() {
		resp, err := r.Refresh(ctx, app.TotalReportRequest{From: testutil.Day(2024, 1, 1), To: testutil.Day(2024, 3, 1)})
		first <- outcome{resp, err}
	}()
	<-gate.started

	go func() {
		resp, err := r.Refresh(ctx, app.TotalReportRequest{From: testutil.Day(2024, 1, 2), To: testutil.Day(2024, 4, 1)})
		second <- outcome{resp, err}
	}()
	<-gate.started

	// The newer request completes first, then the stale one.
	close(gate.release[2])
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, 2, got.resp.Report.From.Day())

	close(gate.release[1])
	stale := <-first
	assert.ErrorIs(t, stale.err, ErrSuperseded)
	assert.Nil(t, stale.resp)
}

func TestRefresher_TicketOrdering(t *testing.T) {
	r := NewRefresher(nil)

	t1 := r.Begin()
	assert.True(t, r.Current(t1))

	t2 := r.Begin()
	assert.Greater(t, t2, t1)
	assert.False(t, r.Current(t1))
	assert.True(t, r.Current(t2))
}
