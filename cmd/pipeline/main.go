package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/ewilliams-labs/trackline/internal/adapters/chart"
	"github.com/ewilliams-labs/trackline/internal/adapters/csvfile"
	"github.com/ewilliams-labs/trackline/internal/adapters/excel"
	"github.com/ewilliams-labs/trackline/internal/adapters/kaggle"
	"github.com/ewilliams-labs/trackline/internal/adapters/sqlite"
	"github.com/ewilliams-labs/trackline/internal/config"
	"github.com/ewilliams-labs/trackline/internal/core/services"
)

func main() {
	app := &cli.App{
		Name:  "trackline",
		Usage: "ETL pipeline for the Spotify 2023 dataset: acquire, clean, persist, chart.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file (defaults reproduce the stock pipeline)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// Credentials may live in a local .env; absence is fine.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With("run_id", uuid.NewString()[:8])

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}

	store, err := sqlite.NewAdapter(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	source := kaggle.NewClient(&http.Client{Timeout: 5 * time.Minute}, "", creds.Username, creds.Key)

	pipe := services.NewPipeline(
		source,
		csvfile.NewLoader(),
		store,
		chart.NewRenderer(),
		excel.NewExporter(),
		cfg,
		logger,
	)

	if err := pipe.Run(c.Context); err != nil {
		logger.Error("pipeline halted", "error", err)
		return cli.Exit("", 1)
	}

	logger.Info("pipeline complete")
	return nil
}
