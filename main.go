package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-share/cmd/config"
	migration "recipe-share/cmd/database/migrate"
	"recipe-share/cmd/database/seed"
	"recipe-share/internal/utils"
	"recipe-share/pkg/lookup"

	"github.com/gofiber/fiber/v2/log"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "recipe-share",
		Usage: "Recipe sharing REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "Path to the YAML config file",
				Sources: cli.EnvVars("CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Migrate the database schema and seed lookup rows",
				Action: migrate,
			},
		},
		Action: serve,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := utils.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}

	// sqlite is the local and test driver; keep its schema current on start
	if cfg.DBDriver == "sqlite" {
		if err := migration.Migrate(db); err != nil {
			return err
		}
	}

	app, err := config.NewApp(db, cfg)
	if err != nil {
		return fmt.Errorf("error creating app: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()
	log.Infof("API listening on PORT %s", cfg.Port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := utils.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}

	if err := migration.Migrate(db); err != nil {
		return err
	}
	return seed.Seed(ctx, lookup.NewLookupRepository(db))
}
