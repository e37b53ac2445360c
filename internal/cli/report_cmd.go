package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/contrib/internal/app"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newReportCmd(a *App) *cobra.Command {
	var (
		from, to          string
		users, projects   []string
		allUsers, details bool
		interactive       bool
		output            = outputTable
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the total project report",
		Long: `Show the total project report: every project that received at least one
hour in the range, total tangible hours, and monthly or yearly participation
charts for longer ranges.

The range defaults to the configured number of days ending today. Time is
taken from the selected volunteers; --project adds time other people logged
on those projects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := app.NewTotalReportRequest(a.now(), a.rangeDays())
			if from != "" {
				t, err := parseDateFlag("from", from)
				if err != nil {
					return err
				}
				req.From = t
			}
			if to != "" {
				t, err := parseDateFlag("to", to)
				if err != nil {
					return err
				}
				req.To = t
			}

			switch {
			case allUsers:
			case len(users) > 0:
				req.UserIDs = users
			case a.defaultUser() != "":
				req.UserIDs = []string{a.defaultUser()}
			}
			for _, p := range projects {
				id, err := resolveProjectID(ctx, a, p)
				if err != nil {
					return err
				}
				req.ProjectIDs = append(req.ProjectIDs, id)
			}

			if err := req.Validate(); err != nil {
				return err
			}

			if interactive {
				if !a.interactive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				_, err := tea.NewProgram(newReportBrowser(a, req, details), tea.WithAltScreen()).Run()
				return err
			}

			resp, err := a.totalReportUseCase().TotalProjectReport(ctx, req)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), resp, output, details)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&users, "user", nil, "Volunteer id to report on (repeatable)")
	cmd.Flags().BoolVar(&allUsers, "all-users", false, "Report on every volunteer")
	cmd.Flags().StringSliceVar(&projects, "project", nil, "Also include other people's time on this project (repeatable)")
	cmd.Flags().BoolVar(&details, "details", false, "Show the per-project detail table")
	cmd.Flags().VarP(&output, "output", "o", "Output format: table, json or yaml")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the report in a full-screen view")
	cmd.MarkFlagsMutuallyExclusive("user", "all-users")

	return cmd
}
