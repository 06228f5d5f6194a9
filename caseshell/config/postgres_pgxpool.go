package config

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXPool opens a pgx connection pool for the configured primary database.
func PGXPool(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	return openPGXPool(ctx, cfg, cfg.PostgresDSN)
}

// PGXReplicaPool opens a pgx connection pool for the configured read replica.
// Returns nil without error when no replica is configured.
func PGXReplicaPool(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	if cfg.PostgresReplicaDSN == "" {
		return nil, nil
	}

	return openPGXPool(ctx, cfg, cfg.PostgresReplicaDSN)
}

func openPGXPool(ctx context.Context, cfg Config, dsn string) (*pgxpool.Pool, error) {
	poolConfig, parseErr := pgxpool.ParseConfig(dsn)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", parseErr)
	}

	poolConfig.MaxConns = cfg.PostgresMaxConns

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, connectErr := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if connectErr != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", connectErr)
	}

	if pingErr := pool.Ping(connectCtx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", pingErr)
	}

	return pool, nil
}
