package db

import (
	"fmt"
	"time"

	"airport-booking/concourse/internal/config"
	"airport-booking/concourse/internal/logging"
	gormModels "airport-booking/concourse/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitORM opens the gorm handle for the configured driver.
// Unique violations surface as gorm.ErrDuplicatedKey on both dialects.
func InitORM(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite has a single writer; one connection also keeps :memory: databases shared
		sqlDB.SetMaxOpenConns(1)
	}

	logging.Info("Connected to database via GORM", "driver", cfg.Driver)
	return db, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

// Migrate creates or updates every table the service owns
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.APIKey{},
		&gormModels.Airport{},
		&gormModels.Route{},
		&gormModels.AirplaneType{},
		&gormModels.Airplane{},
		&gormModels.Crew{},
		&gormModels.Flight{},
		&gormModels.Order{},
		&gormModels.Ticket{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
