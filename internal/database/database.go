package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BetEngine_Go/internal/logger"
)

// PoolConfig sizes the pool behind the postgres record store.
// Zero durations fall back to the package defaults.
type PoolConfig struct {
	ConnString      string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

func (c PoolConfig) apply(pc *pgxpool.Config) {
	maxConns := min(max(c.MaxConns, DefaultMinConnections), math.MaxInt32)
	pc.MaxConns = int32(maxConns)
	pc.MinConns = min(DefaultMinConnections, pc.MaxConns)

	pc.MaxConnIdleTime = DefaultMaxConnIdleTime
	if c.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = c.MaxConnIdleTime
	}
	pc.MaxConnLifetime = DefaultMaxConnLifetime
	if c.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = c.MaxConnLifetime
	}
}

// NewPool opens and pings a PostgreSQL pool for the record store
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	cfg.apply(pc)

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", pc.MaxConns,
		"max_conn_idle", pc.MaxConnIdleTime,
		"max_conn_lifetime", pc.MaxConnLifetime)
	return pool, nil
}
