package repository

import (
	"context"
	"errors"
)

// Record keys of the local store
const (
	KeyEvents      = "events.today.cache"
	KeyPredictions = "predictions.storage"
	KeyPoints      = "profile.points"
	KeyProfile     = "auth.user"
)

// AllKeys lists every record the engine persists
var AllKeys = []string{KeyEvents, KeyPredictions, KeyPoints, KeyProfile}

// ErrNotFound is returned by Get when no record exists for a key
var ErrNotFound = errors.New("record not found")

// KV is the local key-value store the engine persists its records in
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
