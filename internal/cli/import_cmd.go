package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/contrib/internal/cli/formatter"
	"github.com/alexanderramin/contrib/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var sourceStr, user string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import time entries from an API payload file",
		Long: `Import time entries from a JSON file holding either an array of time
entry records or an object with an "entries" array, as returned by the
time entry API. Records already imported are skipped; unknown projects are
created. Malformed records are reported and left out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := importer.ParseSource(sourceStr)
			if err != nil {
				return err
			}
			if user == "" {
				user = app.defaultUser()
			}
			if source == importer.SourceUserList && user == "" {
				return fmt.Errorf("a user list import needs --user or CONTRIB_USER")
			}

			res, err := app.importEntriesUseCase().ImportFile(context.Background(), args[0], source, user)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d of %d records from the %s list (%d already present, %d malformed, %d new projects)\n",
				res.Imported, res.Total, res.Source, res.Skipped, res.Excluded, res.ProjectsCreated)
			if res.Coerced > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(fmt.Sprintf("%d non-numeric time value(s) read as 0", res.Coerced)))
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(out, formatter.Dim("  "+w))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceStr, "source", string(importer.SourceUserList), "Which list the file came from: user or project")
	cmd.Flags().StringVar(&user, "user", "", "Volunteer who owns user-list entries (default from config)")

	return cmd
}
