package cli

import (
	"time"

	"github.com/alexanderramin/contrib/internal/app"
	"github.com/alexanderramin/contrib/internal/config"
	"github.com/alexanderramin/contrib/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reports   service.ReportService
	Refresher *service.Refresher
	Entries   service.EntryService
	Import    service.ImportService
	Projects  service.ProjectService
	Profiles  service.ProfileService
	Weekly    service.WeeklyService

	// Optional use-case overrides. When nil the services above are used.
	TotalReport   app.TotalReportUseCase
	LogEntry      app.LogEntryUseCase
	ImportEntries app.ImportEntriesUseCase
	WeeklySummary app.WeeklySummaryUseCase

	Config *config.Config
	// Setup runs before every command with the --config value. main uses it
	// to load configuration and wire the services above.
	Setup func(configFile string) error

	// IsInteractive reports whether prompts and the TUI may be used.
	IsInteractive func() bool
	// Now is the clock used for default dates; time.Now when nil.
	Now func() time.Time
}

// NewRootCmd creates the top-level "contrib" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "contrib",
		Short:         "Volunteer time entries and total project reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.Setup == nil {
				return nil
			}
			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			return app.Setup(configFile)
		},
	}
	root.PersistentFlags().String("config", "", "Config file (default ./contrib.yaml or ~/.contrib/contrib.yaml)")

	root.AddCommand(
		newReportCmd(app),
		newEntryCmd(app),
		newImportCmd(app),
		newProjectCmd(app),
		newProfileCmd(app),
		newWeeklyCmd(app),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultUser() string {
	if a.Config == nil {
		return ""
	}
	return a.Config.UserID
}

func (a *App) rangeDays() int {
	if a.Config == nil || a.Config.DefaultRangeDays <= 0 {
		return 365
	}
	return a.Config.DefaultRangeDays
}

func (a *App) refresher() *service.Refresher {
	if a.Refresher == nil {
		a.Refresher = service.NewRefresher(a.totalReportUseCase())
	}
	return a.Refresher
}
