package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/rentaltracker/internal/buildinfo"
	"github.com/dmitrijs2005/rentaltracker/internal/client/api"
	"github.com/dmitrijs2005/rentaltracker/internal/client/app"
	"github.com/dmitrijs2005/rentaltracker/internal/client/cli"
	"github.com/dmitrijs2005/rentaltracker/internal/client/config"
	"github.com/dmitrijs2005/rentaltracker/internal/client/storage"
	"github.com/dmitrijs2005/rentaltracker/internal/filex"
	"github.com/dmitrijs2005/rentaltracker/internal/logging"
	"github.com/dmitrijs2005/rentaltracker/internal/netx"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	if err := run(ctx, config.LoadConfig()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, level)

	serverURL, err := netx.ServerURL(cfg.ServerURL)
	if err != nil {
		return err
	}

	if err := filex.EnsureParentDir(cfg.DBPath); err != nil {
		return err
	}
	db, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", cfg.DBPath, "error", err)
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionStore(db)

	client, err := api.New(ctx, serverURL, sessions,
		api.WithLogger(logger.With("component", "api")),
		api.WithTimeout(cfg.RequestTimeout),
		api.WithHeader("User-Agent", "rentaltracker-cli/"+buildinfo.Version),
	)
	if err != nil {
		return err
	}

	controller := app.New(client, sessions, app.WithLogger(logger.With("component", "app")))

	logger.Debug(ctx, "starting shell", "server", serverURL, "db", cfg.DBPath)
	return cli.NewShell(controller, os.Stdin, os.Stdout, logger).Run(ctx)
}
