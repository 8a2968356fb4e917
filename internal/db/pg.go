package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// PoolSize bounds the connection pool. Import passes hold a connection per
// row write, so deployments that take large uploads may want more headroom
// than the defaults.
type PoolSize struct {
	MaxConns int32
	MinConns int32
}

// DefaultPoolSize suits a single-instance deployment with occasional sheet
// imports.
func DefaultPoolSize() PoolSize {
	return PoolSize{MaxConns: 10, MinConns: 2}
}

// Open creates a PostgreSQL connection pool and verifies connectivity.
func Open(ctx context.Context, url string, size PoolSize) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns = size.MaxConns
	cfg.MinConns = size.MinConns
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Info().
		Int32("max_conns", cfg.MaxConns).
		Int32("min_conns", cfg.MinConns).
		Msg("postgres connection pool created")

	return pool, nil
}
