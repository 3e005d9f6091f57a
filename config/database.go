package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mohsinshafique7/clays-notes-backend/models"
)

// ConnectDB opens the Postgres connection and migrates the schema. The
// handle is returned to the caller rather than stored in a package global;
// repositories receive it through their constructors.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Account{},
		&models.SleepRecord{},
		&models.Note{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrate failed: %w", err)
	}
	return db, nil
}
