package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/contrib/internal/cli/formatter"
	"github.com/alexanderramin/contrib/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Log and manage time entries",
	}

	cmd.AddCommand(
		newEntryLogCmd(app),
		newEntryListCmd(app),
		newEntryTangibleCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func requireUser(app *App, user string) (string, error) {
	if user == "" {
		user = app.defaultUser()
	}
	if user == "" {
		return "", fmt.Errorf("no volunteer selected: pass --user or set CONTRIB_USER")
	}
	return user, nil
}

func newEntryLogCmd(app *App) *cobra.Command {
	var (
		date, project, notes, user string
		hours, minutes             int
		intangible                 bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a block of work",
		Long: `Log a block of work against a project. Without --project, and when
running in a terminal, an interactive form is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			userID, err := requireUser(app, user)
			if err != nil {
				return err
			}

			form := domain.NewEntryForm(app.now())
			values := entryValuesFrom(form)
			if date != "" {
				values.date = date
			}
			if cmd.Flags().Changed("hours") {
				values.hours = strconv.Itoa(hours)
			}
			if cmd.Flags().Changed("minutes") {
				values.minutes = strconv.Itoa(minutes)
			}
			values.notes = notes
			values.tangible = !intangible

			if project != "" {
				values.projectID, err = resolveProjectID(ctx, app, project)
				if err != nil {
					return err
				}
			} else if app.interactive() {
				f, err := newEntryHuhForm(ctx, app, values)
				if err != nil {
					return err
				}
				if err := f.Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			form = values.apply(form)
			if !form.Valid() {
				return formErrors(domain.ReduceEntryForm(form, domain.SubmitEntry{}))
			}

			entry, err := app.logEntryUseCase().Log(ctx, userID, form)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s to %s on %s [%s]\n",
				formatter.FormatMinutes(entry.Hours*60+entry.Minutes),
				entry.ProjectName,
				entry.DateOfWork.Format(domain.DateLayout),
				shortID(entry.ID),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date of work (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&hours, "hours", 0, "Hours worked")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes worked")
	cmd.Flags().StringVar(&project, "project", "", "Project name or id")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().BoolVar(&intangible, "intangible", false, "Mark the time as intangible")
	cmd.Flags().StringVar(&user, "user", "", "Volunteer id (default from config)")

	return cmd
}

func formErrors(f domain.EntryForm) error {
	errs := f.Errors()
	msgs := make([]string, 0, len(errs))
	for field, msg := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return fmt.Errorf("invalid entry: %s", strings.Join(msgs, "; "))
}

func newEntryListCmd(app *App) *cobra.Command {
	var from, to, user string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged time entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, d := app.now().Date()
			end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			start := end.AddDate(0, 0, -days)
			var err error
			if from != "" {
				if start, err = parseDateFlag("from", from); err != nil {
					return err
				}
			}
			if to != "" {
				if end, err = parseDateFlag("to", to); err != nil {
					return err
				}
			}

			var users []string
			if user != "" {
				users = []string{user}
			} else if app.defaultUser() != "" {
				users = []string{app.defaultUser()}
			}

			entries, err := app.Entries.List(context.Background(), users, start, end)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No time entries found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryList(entries, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 14, "Days to show when --from is not set")
	cmd.Flags().StringVar(&user, "user", "", "Volunteer id (default from config)")

	return cmd
}

func newEntryTangibleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tangible ID",
		Short: "Flip an entry between tangible and intangible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			entry, err := app.Entries.ToggleTangible(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %s is now %s\n", shortID(entry.ID), formatter.TangibleBadge(entry.IsTangible))
			return nil
		},
	}
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", shortID(id))
			return nil
		},
	}
}
