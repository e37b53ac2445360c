package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/contrib/internal/cli/formatter"
	"github.com/alexanderramin/contrib/internal/service"
	"github.com/spf13/cobra"
)

func newWeeklyCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Compare each volunteer's logged hours with their weekly commitment",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := app.now()
			if week != "" {
				t, err := parseDateFlag("week", week)
				if err != nil {
					return err
				}
				day = t
			}
			start := service.WeekStart(day)

			rows, err := app.weeklySummaryUseCase().Summary(context.Background(), start)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeekly(start, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any day of the week to show (YYYY-MM-DD, default this week)")

	return cmd
}
