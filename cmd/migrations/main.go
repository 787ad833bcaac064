package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/polling-app/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polling-app/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		slog.Error("a migration name is required (or \"all\")")
		os.Exit(2)
	}
	migrationName := os.Args[1]

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	cfg, err := config.Parse("migrations", os.Args[2:], os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	slog.SetDefault(cfg.NewLogger())

	if cfg.DatabaseDriver != config.DriverPostgres {
		slog.Error("migrations only apply to postgres, sqlite migrates on startup", "driver", cfg.DatabaseDriver)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if migrationName == "all" {
		err = postgres.Migrate(ctx, db)
	} else {
		err = postgres.ApplyMigration(ctx, db, migrationName)
	}
	if err != nil {
		slog.Error("migration failed", "migration", migrationName, "error", err)
		os.Exit(1)
	}

	slog.Info("migration executed successfully", "migration", migrationName)
}
