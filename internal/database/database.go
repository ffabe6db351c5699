package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gosm1/pureperfumes/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const pingTimeout = 5 * time.Second

// poolConfig translates DatabaseConfig into pgx pool settings.
func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	pc.MaxConns = int32(cfg.MaxConnections)
	pc.MinConns = int32(cfg.MinConnections)
	pc.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	pc.MaxConnIdleTime = time.Duration(cfg.MaxConnIdleTime) * time.Second

	return pc, nil
}

// NewPool opens a connection pool sized from cfg and verifies it with a
// bounded ping before handing it out.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	log := logger.With().Str("component", "database").Logger()

	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int32("max_conns", pc.MaxConns).
		Int32("min_conns", pc.MinConns).
		Msg("opening database pool")

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().Msg("database pool ready")

	return pool, nil
}
