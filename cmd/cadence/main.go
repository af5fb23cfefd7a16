package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/cadence/internal/analyzer"
	"github.com/alexanderramin/cadence/internal/cli"
	"github.com/alexanderramin/cadence/internal/config"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/ics"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("CADENCE_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Determine DB path: env var, config, or default ~/.cadence/cadence.db
	dbPath := os.Getenv("CADENCE_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".cadence", "cadence.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	eventRepo := repository.NewSQLiteEventRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging goes to stderr only for interactive debugging runs.
	var observerOut io.Writer
	if os.Getenv("CADENCE_DEBUG") != "" {
		observerOut = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(observerOut)

	sources := make([]ics.Source, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		sources = append(sources, ics.Source{
			ID:       src.ID,
			Name:     src.Name,
			URL:      src.URL,
			Calendar: domain.CalendarType(src.Calendar),
		})
	}

	opts := analyzer.Options{
		RangeDays:        cfg.RangeDays,
		IncludeRecurring: cfg.IncludeRecurring,
		MinEvents:        cfg.MinEvents,
	}

	app := &cli.App{
		Import:    service.NewImportService(ics.NewClient(), sources, uow, cfg.RangeDays, observer),
		Profiles:  service.NewProfileService(eventRepo, profileRepo, opts, observer),
		Briefings: service.NewBriefingService(eventRepo, profileRepo, observer),
	}

	// Color output only makes sense on a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
