package database

import (
	"context"
	"database/sql"
	"fmt"

	"tracker_orders/internal/config"
	"tracker_orders/internal/logging"

	_ "github.com/lib/pq"
)

var log = logging.For("database", "infrastructure")

// ConnectPostgres opens the pool and pings it once.
func ConnectPostgres(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres dsn cannot be empty")
	}

	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if cfg.Postgres.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	}
	if cfg.Postgres.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	}
	if cfg.Postgres.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	log.Infof("postgres connection established max_open_conns=%d", cfg.Postgres.MaxOpenConns)
	return db, nil
}
