package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/Dodibois40/atelier-planning/internal/cli"
	"github.com/Dodibois40/atelier-planning/internal/db"
	"github.com/Dodibois40/atelier-planning/internal/repository"
	"github.com/Dodibois40/atelier-planning/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.atelier/atelier.db
	dbPath := os.Getenv("ATELIER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".atelier", "atelier.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	workerRepo := repository.NewSQLiteWorkerRepo(database)
	affairRepo := repository.NewSQLiteAffairRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	configRepo := repository.NewSQLiteCalendarConfigRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Workers:  service.NewWorkerService(workerRepo, nil),
		Affairs:  service.NewAffairService(affairRepo, assignmentRepo, uow),
		Planning: service.NewPlanningService(workerRepo, affairRepo, assignmentRepo, configRepo),
		Import:   service.NewImportService(uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
