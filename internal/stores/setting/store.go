// Package setting is a generic key/value configuration store. The only key
// in use today is the admin password hash.
package setting

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyAdminPasswordHash names the setting holding the bcrypt hash of the
// admin password
const KeyAdminPasswordHash = "admin_pw_hash"

// ErrNotFound is returned when no setting exists for the requested key
var ErrNotFound = errors.New("setting not found")

// Setting is a single named configuration value
type Setting struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"size:512;not null"`
}

// TableName overrides the GORM table name
func (Setting) TableName() string {
	return "settings"
}

// Store interface defines methods for settings storage
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// GormStore handles settings persistence using GORM
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a new settings store on an open GORM connection
func NewStore(db *gorm.DB) (*GormStore, error) {
	// Auto-migrate tables
	if err := db.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate settings table: %w", err)
	}

	return &GormStore{db: db}, nil
}

// Get retrieves a setting value by key
func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var row Setting
	result := s.db.WithContext(ctx).First(&row, "`key` = ?", key)

	if result.Error != nil {
		// Handle not found error
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		// Handle generic errors
		return "", fmt.Errorf("failed to get setting: %w", result.Error)
	}

	return row.Value, nil
}

// Set upserts a setting value, committed immediately
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	row := Setting{Key: key, Value: value}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row)

	if result.Error != nil {
		return fmt.Errorf("failed to set setting: %w", result.Error)
	}

	return nil
}
