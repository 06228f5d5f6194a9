package config

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the "postgres" driver for database/sql.
	_ "github.com/lib/pq"
)

// SQLDB opens a database/sql connection for the configured primary database.
func SQLDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, openErr := sql.Open("postgres", cfg.PostgresDSN)
	if openErr != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", openErr)
	}

	db.SetMaxOpenConns(int(cfg.PostgresMaxConns))

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if pingErr := db.PingContext(connectCtx); pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", pingErr)
	}

	return db, nil
}
