package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mouazan/thesisflow/internal/cli"
	"github.com/mouazan/thesisflow/internal/db"
	"github.com/mouazan/thesisflow/internal/llm"
	"github.com/mouazan/thesisflow/internal/planner"
	"github.com/mouazan/thesisflow/internal/repository"
	"github.com/mouazan/thesisflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.thesisflow/thesisflow.db
	dbPath := os.Getenv("THESISFLOW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".thesisflow", "thesisflow.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// The generator only runs when the LLM is enabled; a nil client keeps
	// the engine on its deterministic fallback path.
	var client llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewOllamaClient(llmCfg, observer)
	}

	engine := planner.NewEngine(client, nil)

	app := &cli.App{
		Planning: service.NewPlanningService(projectRepo, planRepo, uow, engine, nil),
		Status:   service.NewStatusService(projectRepo, planRepo, nil),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
