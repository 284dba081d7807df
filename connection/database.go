package connection

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"authapi/config"
	"authapi/model"
)

// Database opens the Postgres connection and migrates the user table.
// TranslateError lets the repository distinguish unique-index violations.
func Database(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
