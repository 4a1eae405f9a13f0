package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BetEngine_Go/internal/repository"
)

// KV stores engine records in the kv_records table
type KV struct {
	pool *pgxpool.Pool
}

// NewKV creates a postgres-backed store. Migrate must have run against the pool.
func NewKV(pool *pgxpool.Pool) *KV {
	return &KV{pool: pool}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := k.pool.QueryRow(ctx, `SELECT value FROM kv_records WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetRecord, err)
	}
	return value, nil
}

func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	_, err := k.pool.Exec(ctx, `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextPutRecord, err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	if _, err := k.pool.Exec(ctx, `DELETE FROM kv_records WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteRecord, err)
	}
	return nil
}

// Close releases the pool
func (k *KV) Close() error {
	k.pool.Close()
	return nil
}
