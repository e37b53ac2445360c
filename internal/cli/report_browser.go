package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/contrib/internal/app"
	"github.com/alexanderramin/contrib/internal/cli/formatter"
	"github.com/alexanderramin/contrib/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// reportLoadedMsg carries the result of one refresh back to the browser.
type reportLoadedMsg struct {
	ticket service.Ticket
	resp   *app.TotalReportResponse
	err    error
}

type browserKeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Details   key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Details, k.Refresh, k.Quit}
}

func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultBrowserKeys() browserKeyMap {
	return browserKeyMap{
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "month back")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "month forward")),
		Details:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "details")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// reportBrowser shows a total project report in a scrollable viewport and
// lets the range be shifted a month at a time. Every shift starts a new
// refresh; only the newest one is rendered.
type reportBrowser struct {
	refresher *service.Refresher
	req       app.TotalReportRequest
	details   bool

	keys     browserKeyMap
	help     help.Model
	viewport viewport.Model
	ready    bool

	ticket  service.Ticket
	loading bool
	resp    *app.TotalReportResponse
	err     error
}

func newReportBrowser(a *App, req app.TotalReportRequest, details bool) *reportBrowser {
	return &reportBrowser{
		refresher: a.refresher(),
		req:       req,
		details:   details,
		keys:      defaultBrowserKeys(),
		help:      help.New(),
	}
}

func (m *reportBrowser) Init() tea.Cmd {
	return m.load()
}

// load starts a refresh for the current range.
func (m *reportBrowser) load() tea.Cmd {
	ticket := m.refresher.Begin()
	m.ticket = ticket
	m.loading = true
	req := m.req
	refresher := m.refresher
	return func() tea.Msg {
		resp, err := refresher.Run(context.Background(), ticket, req)
		return reportLoadedMsg{ticket: ticket, resp: resp, err: err}
	}
}

func (m *reportBrowser) shift(months int) tea.Cmd {
	m.req.From = addMonths(m.req.From, months)
	m.req.To = addMonths(m.req.To, months)
	return m.load()
}

// addMonths moves t by n calendar months, clamping the day to the last day
// of the target month instead of overflowing into the next one.
func addMonths(t time.Time, n int) time.Time {
	y, mo, d := t.Date()
	first := time.Date(y, mo+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(d, last)-1)
}

func (m *reportBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-3, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.help.Width = msg.Width
		m.render()
		return m, nil

	case reportLoadedMsg:
		if errors.Is(msg.err, service.ErrSuperseded) || msg.ticket != m.ticket {
			return m, nil
		}
		m.loading = false
		m.resp, m.err = msg.resp, msg.err
		m.render()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevMonth):
			return m, m.shift(-1)
		case key.Matches(msg, m.keys.NextMonth):
			return m, m.shift(1)
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		case key.Matches(msg, m.keys.Details):
			m.details = !m.details
			m.render()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// content is the report body for the current state.
func (m *reportBrowser) content() string {
	switch {
	case m.err != nil:
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	case m.resp == nil:
		return formatter.Dim("Loading report...")
	default:
		return renderReport(m.resp, m.details)
	}
}

func (m *reportBrowser) render() {
	if m.ready {
		m.viewport.SetContent(m.content())
	}
}

func (m *reportBrowser) View() string {
	status := formatter.HumanRange(m.req.From, m.req.To)
	if m.loading {
		status += formatter.Dim("  refreshing...")
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(status) + "\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.content())
	}
	b.WriteString(fmt.Sprintf("\n%s", m.help.View(m.keys)))
	return b.String()
}
