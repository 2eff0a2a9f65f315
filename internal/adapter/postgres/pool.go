package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crm-backend/internal/config"
)

// NewPool opens the pgx pool and pings it, so a bad DSN or an unreachable
// server fails at startup rather than on the first request.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	for k, v := range sessionParams(cfg) {
		poolCfg.ConnConfig.RuntimeParams[k] = v
	}
	return poolCfg, nil
}

// sessionParams are sent as startup parameters on every new connection.
// Timeouts are in milliseconds, the unit postgres assumes for bare numbers.
func sessionParams(cfg config.DatabaseConfig) map[string]string {
	params := make(map[string]string, 3)
	if cfg.ApplicationName != "" {
		params["application_name"] = cfg.ApplicationName
	}
	setMillis := func(key string, d time.Duration) {
		if d > 0 {
			params[key] = strconv.FormatInt(d.Milliseconds(), 10)
		}
	}
	setMillis("statement_timeout", cfg.StatementTimeout)
	setMillis("lock_timeout", cfg.LockTimeout)
	return params
}
