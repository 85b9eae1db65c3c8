package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"marketplace-catalog/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// newPoolConfig maps the catalogue database settings onto a pgxpool config.
// Every session is tagged with the application name and, when set, a
// statement timeout so a slow catalogue read cannot hold a connection.
func newPoolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	params := poolConfig.ConnConfig.RuntimeParams
	if cfg.ApplicationName != "" {
		params["application_name"] = cfg.ApplicationName
	}
	if cfg.StatementTimeout > 0 {
		params["statement_timeout"] = strconv.Itoa(cfg.StatementTimeout)
	}

	return poolConfig, nil
}

// NewPool creates a PostgreSQL connection pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Str("application_name", cfg.ApplicationName).
		Int("statement_timeout_ms", cfg.StatementTimeout).
		Int("max_connections", cfg.MaxConnections).
		Msg("creating catalogue connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// Open returns a pool with the catalogue schema applied.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	logger = logger.With().Str("component", "database").Logger()

	pool, err := NewPool(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info().
		Dur("duration", time.Since(start)).
		Msg("catalogue schema applied")

	return pool, nil
}
