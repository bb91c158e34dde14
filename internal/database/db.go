package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inventory-portal/internal/logger"
	"inventory-portal/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the single-file sqlite database and runs migrations.
// The retry loop mirrors the bootstrap behavior for a store that is
// not ready yet; after maxAttempts the error is returned to the caller.
func Init(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var err error
	const maxAttempts = 5
	for i := 1; i <= maxAttempts; i++ {
		DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger:         gormlogger.Discard,
			TranslateError: true,
		})
		if err == nil {
			break
		}
		logger.Warningf("failed to open database (attempt %d/%d): %v", i, maxAttempts, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("open database after %d attempts: %w", maxAttempts, err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.ResetToken{},
		&models.InventoryItem{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}
