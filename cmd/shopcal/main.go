package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/dancinggoatstudios/shopcal/internal/cli"
	"github.com/dancinggoatstudios/shopcal/internal/config"
	"github.com/dancinggoatstudios/shopcal/internal/db"
	"github.com/dancinggoatstudios/shopcal/internal/repository"
	"github.com/dancinggoatstudios/shopcal/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("SHOPCAL_CONFIG"))
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if env := os.Getenv("SHOPCAL_DB"); env != "" {
		dbPath = env
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	jobRepo := repository.NewSQLiteJobRepo(database)
	feed := service.NewChangeFeed()
	observer := service.NewZapUseCaseObserver(logger)

	app := &cli.App{
		Jobs:        service.NewJobService(jobRepo, feed, observer),
		Schedule:    service.NewScheduleService(jobRepo, feed, observer),
		Projection:  service.NewProjectionService(jobRepo),
		Feed:        feed,
		Config:      cfg,
		Logger:      logger,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
