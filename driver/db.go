package driver

import (
	"context"
	"time"

	"rss-analyzer/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Init opens the connection pool for the entry store and verifies it is
// reachable. An unreachable store at startup is fatal for the run.
func Init(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		logger.Logger.Error("Failed to parse database config", "error", err)
		return nil, err
	}

	// Single-writer, single-reader pipeline: a small pool is enough.
	config.MaxConns = 5
	config.MinConns = 1
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	dbPool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		return nil, err
	}

	if err := dbPool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		dbPool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database pool", "max_conns", config.MaxConns)
	return dbPool, nil
}
