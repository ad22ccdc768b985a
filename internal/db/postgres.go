package db

import (
	"fmt"
	"time"

	"airport-booking/concourse/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

// InitSQLX returns the sqlx handle used for raw queries (API key lookups, health pings).
// Postgres gets its own lib/pq pool; SQLite shares gorm's connection.
func InitSQLX(cfg config.DatabaseConfig, orm *gorm.DB) (*sqlx.DB, error) {
	if cfg.Driver != "postgres" {
		return WrapSQLX(orm, "sqlite3")
	}

	var (
		db  *sqlx.DB
		err error
	)
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("postgres", cfg.DSN())
		if err == nil {
			return db, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to postgres via sqlx: %w", err)
}

// WrapSQLX exposes gorm's underlying *sql.DB through sqlx
func WrapSQLX(orm *gorm.DB, driverName string) (*sqlx.DB, error) {
	sqlDB, err := orm.DB()
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(sqlDB, driverName), nil
}
