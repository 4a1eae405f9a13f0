package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/BetEngine_Go/internal/config"
	"github.com/osse101/BetEngine_Go/internal/database"
	"github.com/osse101/BetEngine_Go/internal/database/postgres"
	"github.com/osse101/BetEngine_Go/internal/database/sqlite"
	"github.com/osse101/BetEngine_Go/internal/repository"
	"github.com/osse101/BetEngine_Go/internal/storage"
)

// OpenStore opens the record store selected by cfg.StoreDriver, fronted by a
// read-through cache when cfg.CacheSize is positive. The caller must Close it.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.KV, error) {
	kv, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "cache_size", cfg.CacheSize)

	if cfg.CacheSize > 0 {
		return storage.NewCachedKV(kv, cfg.CacheSize, cfg.CacheTTL), nil
	}
	return kv, nil
}

func openBackend(ctx context.Context, cfg *config.Config) (repository.KV, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return storage.NewMemoryKV(), nil

	case config.StoreDriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDBDir, err)
			}
		}
		kv, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		return kv, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, database.PoolConfig{
			ConnString: cfg.GetDBConnString(),
			MaxConns:   cfg.DBMaxConns,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		return postgres.NewKV(pool), nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}
}
