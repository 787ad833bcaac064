// Package repository selects the storage backend named by the configuration.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm/logger"

	"github.com/vncsmyrnk/polling-app/internal/adapters/repository/gormstore"
	"github.com/vncsmyrnk/polling-app/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polling-app/internal/config"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

type Repositories struct {
	Polls ports.PollRepository
	Votes ports.VoteRepository
	Users ports.UserRepository
	Auth  ports.AuthRepository

	close func() error
}

func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// Open connects to the configured database and brings its schema up to date.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("connected to postgres")
		return &Repositories{
			Polls: postgres.NewPollRepository(db),
			Votes: postgres.NewVoteRepository(db),
			Users: postgres.NewUserRepository(db),
			Auth:  postgres.NewAuthRepository(db),
			close: db.Close,
		}, nil

	case config.DriverSQLite:
		logLevel := logger.Silent
		if cfg.LogLevel <= slog.LevelDebug {
			logLevel = logger.Info
		}
		db, err := gormstore.Open(ctx, cfg.SQLitePath, logLevel)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		slog.Info("opened sqlite database", "path", cfg.SQLitePath)
		return &Repositories{
			Polls: gormstore.NewPollRepository(db),
			Votes: gormstore.NewVoteRepository(db),
			Users: gormstore.NewUserRepository(db),
			Auth:  gormstore.NewAuthRepository(db),
			close: sqlDB.Close,
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
}
