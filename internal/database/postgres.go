package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casaluna/hotel/api/internal/config"
)

// NewPool builds the primary connection pool from configuration.
// Returns (nil, nil) when no DATABASE_URL is configured, which puts the
// façade into fallback-only mode.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid DATABASE_URL: %v", ErrConnection, err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.ConnConfig.ConnectTimeout = cfg.AcquireTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// A failed ping is not fatal: the fallback path covers reads and the
	// pool may become reachable later.
	pingCtx, cancel := context.WithTimeout(ctx, cfg.AcquireTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		slog.Warn("primary database unreachable at startup, queries will fall back",
			slog.String("error", err.Error()),
		)
	}

	return pool, nil
}

// excerpt returns a truncated copy of sql safe for log lines and error
// messages. Parameter values never appear in the SQL text, so the excerpt
// cannot leak user data.
func excerpt(sql string) string {
	const max = 80
	if len(sql) <= max {
		return sql
	}
	return sql[:max] + "..."
}
