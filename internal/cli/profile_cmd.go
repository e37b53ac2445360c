package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/contrib/internal/cli/formatter"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage volunteer profiles",
	}

	cmd.AddCommand(
		newProfileAddCmd(app),
		newProfileListCmd(app),
	)

	return cmd
}

func newProfileAddCmd(app *App) *cobra.Command {
	var (
		id, first, last, email string
		hours                  float64
		inactive               bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a volunteer",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.VolunteerProfile{
				ID:                   id,
				FirstName:            first,
				LastName:             last,
				Email:                email,
				WeeklyCommittedHours: hours,
				Active:               !inactive,
			}
			if err := app.Profiles.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s [%s]\n", p.FullName(), shortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Volunteer id as used by the time entry API (generated when empty)")
	cmd.Flags().StringVar(&first, "first", "", "First name")
	cmd.Flags().StringVar(&last, "last", "", "Last name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Weekly committed hours")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Add as inactive")
	_ = cmd.MarkFlagRequired("first")

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List volunteers",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(context.Background(), !all)
			if err != nil {
				return err
			}

			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No volunteers found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfileList(profiles))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive volunteers")

	return cmd
}
