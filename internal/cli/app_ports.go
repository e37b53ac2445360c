package cli

import "github.com/alexanderramin/contrib/internal/app"

func (a *App) totalReportUseCase() app.TotalReportUseCase {
	if a.TotalReport != nil {
		return a.TotalReport
	}
	return a.Reports
}

func (a *App) logEntryUseCase() app.LogEntryUseCase {
	if a.LogEntry != nil {
		return a.LogEntry
	}
	return a.Entries
}

func (a *App) importEntriesUseCase() app.ImportEntriesUseCase {
	if a.ImportEntries != nil {
		return a.ImportEntries
	}
	return a.Import
}

func (a *App) weeklySummaryUseCase() app.WeeklySummaryUseCase {
	if a.WeeklySummary != nil {
		return a.WeeklySummary
	}
	return a.Weekly
}
