package config

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLX opens an sqlx connection for the configured primary database.
func SQLX(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	db, connectErr := sqlx.ConnectContext(connectCtx, "postgres", cfg.PostgresDSN)
	if connectErr != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", connectErr)
	}

	db.SetMaxOpenConns(int(cfg.PostgresMaxConns))

	return db, nil
}
