// Command seed creates the schema if needed and loads sample portfolio
// data, replacing whatever the tables currently hold.
package main

import (
	"context"
	"time"

	"portfolio-api/internal/app"
	"portfolio-api/internal/config"
	"portfolio-api/internal/database/schema"
	"portfolio-api/internal/database/seeder"
	"portfolio-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.AppName, cfg.App.Environment)

	ctn, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		_ = ctn.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := schema.Ensure(ctx, ctn.DB); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	runner := seeder.Runner{Seeders: seeder.All()}
	if err := runner.Run(ctx, ctn.DB); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("sample data loaded")
}
