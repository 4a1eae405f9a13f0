package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/logger"
	"github.com/osse101/BetEngine_Go/internal/repository"
)

// Records is the typed codec over the engine's key-value store.
//
// Loads never fail: a missing, unreadable or undecodable record is reported as absent.
// Saves return an error wrapping domain.ErrPersistenceUnavailable; callers log it and
// keep their in-memory state.
type Records struct {
	kv repository.KV
}

// NewRecords creates a Records codec over kv
func NewRecords(kv repository.KV) *Records {
	return &Records{kv: kv}
}

// LoadEvents returns the persisted active event pool
func (r *Records) LoadEvents(ctx context.Context) ([]domain.Event, bool) {
	var events []domain.Event
	if !r.load(ctx, repository.KeyEvents, &events) {
		return nil, false
	}
	return events, true
}

// SaveEvents persists the active event pool
func (r *Records) SaveEvents(ctx context.Context, events []domain.Event) error {
	return r.save(ctx, repository.KeyEvents, events)
}

// LoadPredictions returns the persisted prediction set
func (r *Records) LoadPredictions(ctx context.Context) ([]domain.Prediction, bool) {
	var preds []domain.Prediction
	if !r.load(ctx, repository.KeyPredictions, &preds) {
		return nil, false
	}
	return preds, true
}

// SavePredictions persists the prediction set
func (r *Records) SavePredictions(ctx context.Context, preds []domain.Prediction) error {
	return r.save(ctx, repository.KeyPredictions, preds)
}

// LoadPoints returns the persisted balance. The record is a bare decimal integer.
func (r *Records) LoadPoints(ctx context.Context) (int, bool) {
	data, ok := r.read(ctx, repository.KeyPoints)
	if !ok {
		return 0, false
	}
	points, err := strconv.Atoi(string(data))
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRecordDecodeFailed, "key", repository.KeyPoints, "error", err)
		return 0, false
	}
	return points, true
}

// SavePoints persists the balance
func (r *Records) SavePoints(ctx context.Context, points int) error {
	return r.write(ctx, repository.KeyPoints, []byte(strconv.Itoa(points)))
}

// LoadProfile returns the signed-in profile, if any
func (r *Records) LoadProfile(ctx context.Context) (*domain.UserProfile, bool) {
	var profile domain.UserProfile
	if !r.load(ctx, repository.KeyProfile, &profile) {
		return nil, false
	}
	return &profile, true
}

// SaveProfile persists the signed-in profile
func (r *Records) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	return r.save(ctx, repository.KeyProfile, profile)
}

// DeleteProfile removes the signed-in profile
func (r *Records) DeleteProfile(ctx context.Context) error {
	return r.remove(ctx, repository.KeyProfile)
}

// CheckHealth reports whether the backing store answers reads. A missing record is healthy.
func (r *Records) CheckHealth(ctx context.Context) error {
	if _, err := r.kv.Get(ctx, repository.KeyPoints); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w: %v", ErrContextHealthCheck, domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

// Wipe removes every engine record
func (r *Records) Wipe(ctx context.Context) error {
	var errs []error
	for _, key := range repository.AllKeys {
		if err := r.remove(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Records) load(ctx context.Context, key string, target interface{}) bool {
	data, ok := r.read(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRecordDecodeFailed, "key", key, "error", err)
		return false
	}
	return true
}

func (r *Records) read(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.FromContext(ctx).Warn(LogMsgRecordLoadFailed, "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

func (r *Records) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", ErrContextEncodeRecord, domain.ErrPersistenceUnavailable, err)
	}
	return r.write(ctx, key, data)
}

func (r *Records) write(ctx context.Context, key string, data []byte) error {
	if err := r.kv.Put(ctx, key, data); err != nil {
		logger.FromContext(ctx).Error(LogMsgRecordSaveFailed, "key", key, "error", err)
		return fmt.Errorf("%s %s: %w: %v", ErrContextSaveRecord, key, domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (r *Records) remove(ctx context.Context, key string) error {
	if err := r.kv.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Error(LogMsgRecordDeleteFailed, "key", key, "error", err)
		return fmt.Errorf("%s %s: %w: %v", ErrContextDeleteRecord, key, domain.ErrPersistenceUnavailable, err)
	}
	return nil
}
