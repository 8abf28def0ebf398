package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrKeyNotFound = errors.New("key not found")

// KVStore is the durable key-value capability the session flag and booking
// ledger persist through.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type kvEntry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// GormKVStore keeps key-value pairs in a single table.
type GormKVStore struct {
	db *gorm.DB
}

func NewGormKVStore(db *gorm.DB) (*GormKVStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &GormKVStore{db: db}, nil
}

func (s *GormKVStore) Get(ctx context.Context, key string) (string, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

func (s *GormKVStore) Set(ctx context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *GormKVStore) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&kvEntry{}).Error
}
