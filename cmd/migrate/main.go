// Command migrate manages the gateway's PostgreSQL schema.
//
//	migrate [--config path] up|down|status|version|redo|reset
package main

import (
	"context"
	"fmt"
	"os"

	"cryptopay-gateway/config"
	"cryptopay-gateway/migrations"
	"cryptopay-gateway/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/pflag"
)

var commands = map[string]bool{
	"up":      true,
	"down":    true,
	"status":  true,
	"version": true,
	"redo":    true,
	"reset":   true,
}

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [--config path] up|down|status|version|redo|reset\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 || !commands[pflag.Arg(0)] {
		pflag.Usage()
		os.Exit(2)
	}
	command := pflag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.Database.Driver).Msg("Migrations only apply to the postgres driver")
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		log.Fatal().Err(err).Msg("Failed to set goose dialect")
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close() //nolint:errcheck

	if err := goose.RunContext(context.Background(), command, db, "."); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("Migration failed")
	}
	log.Info().Str("command", command).Msg("Migration finished")
}
