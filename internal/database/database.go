// internal/database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobapp-back/internal/models"
)

// InitDB opens the Postgres connection. TranslateError lets GORM surface
// unique violations as gorm.ErrDuplicatedKey for the repository layer.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// MigrateDB creates or updates the schema for all models.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Submission{})
}
