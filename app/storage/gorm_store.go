package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Key       string `gorm:"size:64;primaryKey"`
	Schema    int    `gorm:"not null"`
	Value     []byte `gorm:"type:json;not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "storage_entries"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entry{})
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string, dest interface{}) error {
	var entry Entry
	err := s.db.WithContext(ctx).First(&entry, "`key` = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrKeyNotFound
		}
		return err
	}

	if entry.Schema != SchemaVersion {
		return &CorruptStateError{Key: key, Schema: entry.Schema}
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return &CorruptStateError{Key: key, Schema: entry.Schema, Err: err}
	}
	return nil
}

func (s *gormStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := Entry{
		Key:       key,
		Schema:    SchemaVersion,
		Value:     raw,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Entry{}, "`key` = ?", key).Error
}

func (s *gormStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&Entry{}).Order("`key`").Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
