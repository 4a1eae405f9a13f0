package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/osse101/BetEngine_Go/internal/repository"
)

// kvRecord is one row of the kv_records table
type kvRecord struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvRecord) TableName() string { return "kv_records" }

// KV is the default on-device store: a single sqlite file holding every engine record
type KV struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite file at path and migrates the schema
func Open(path string) (*KV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextOpen, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextOpen, err)
	}
	// One writer keeps :memory: databases on a single connection.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", ErrContextMigrate, err)
	}
	return &KV{db: db}, nil
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var rec kvRecord
	err := k.db.WithContext(ctx).Where("key = ?", key).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetRecord, err)
	}
	return rec.Value, nil
}

func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	rec := kvRecord{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := k.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextPutRecord, err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	if err := k.db.WithContext(ctx).Where("key = ?", key).Delete(&kvRecord{}).Error; err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteRecord, err)
	}
	return nil
}

// Close closes the underlying database handle
func (k *KV) Close() error {
	sqlDB, err := k.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
