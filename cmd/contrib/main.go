package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/contrib/internal/cli"
	"github.com/alexanderramin/contrib/internal/config"
	"github.com/alexanderramin/contrib/internal/db"
	"github.com/alexanderramin/contrib/internal/repository"
	"github.com/alexanderramin/contrib/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}

	// Prompts and the report browser need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	// Config and services are wired once cobra has parsed --config.
	app.Setup = func(configFile string) error {
		cfg, err := config.Load(configFile, config.DefaultEnvFiles...)
		if err != nil {
			return err
		}

		// Open database
		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		wire(app, database, cfg)
		return nil
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func wire(app *cli.App, database *sql.DB, cfg *config.Config) {
	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	entryRepo := repository.NewSQLiteTimeEntryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel))
	}

	// Wire services
	reportSvc := service.NewReportService(entryRepo, observers...)
	app.Reports = reportSvc
	app.Refresher = service.NewRefresher(reportSvc)
	app.Entries = service.NewEntryService(entryRepo, uow, observers...)
	app.Import = service.NewImportService(uow, observers...)
	app.Projects = service.NewProjectService(projectRepo)
	app.Profiles = service.NewProfileService(profileRepo)
	app.Weekly = service.NewWeeklyService(profileRepo, entryRepo)
	app.Config = cfg
}
