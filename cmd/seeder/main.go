package main

import (
	"context"
	"os"
	"time"

	"skillmatch/internal/config"
	"skillmatch/internal/database/migration"
	dbpostgres "skillmatch/internal/database/postgres"
	"skillmatch/internal/database/seeder"
	"skillmatch/internal/logger"
	"skillmatch/migrations"

	"github.com/spf13/pflag"
)

func main() {
	var (
		skipMigrate bool
		migrateOnly bool
		only        []string
		timeout     time.Duration
	)
	pflag.BoolVar(&skipMigrate, "skip-migrate", false, "do not apply schema migrations before seeding")
	pflag.BoolVar(&migrateOnly, "migrate-only", false, "apply schema migrations and exit")
	pflag.StringSliceVar(&only, "only", nil, "comma separated seeder names to run (skills,learning_resources,job_roles,projects,demo_user)")
	pflag.DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(config.LogConfig{})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.Log).With().Str("cmd", "seeder").Logger()

	seeders, err := seeder.Select(seeder.Defaults(), only)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid --only")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer db.Close()

	if !skipMigrate {
		if err := (migration.Runner{Source: migrations.FS, Log: log}).Run(ctx, db.SQLDB()); err != nil {
			log.Error().Err(err).Msg("migration failed")
			os.Exit(1)
		}
	}
	if migrateOnly {
		return
	}

	if err := (seeder.Runner{Seeders: seeders, Log: log}).Run(ctx, db); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
	log.Info().Int("seeders", len(seeders)).Msg("seeding complete")
}
