// Package db opens the shared GORM connection used by every store.
package db

import (
	"fmt"

	"github.com/ethanbaker/funfacts/pkg/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database. A DATABASE_URL selects MySQL;
// otherwise a local sqlite file is used (SQLITE_PATH, default facts.db).
func Open(cfg *utils.Config) (*gorm.DB, error) {
	if dsn := cfg.Get("DATABASE_URL"); dsn != "" {
		conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql database: %w", err)
		}
		return conn, nil
	}

	path := cfg.GetWithDefault("SQLITE_PATH", "facts.db")
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	return conn, nil
}
