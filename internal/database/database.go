package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/config"
	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured store, tunes the pool and migrates the schema.
func Connect(dbConfig *config.DBConfig, production bool) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch dbConfig.Driver {
	case config.DriverPostgres:
		db, err = openPostgres(dbConfig)
	case config.DriverSQLite, "":
		db, err = OpenSQLite(dbConfig.Path)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", dbConfig.Driver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	if dbConfig.Driver == config.DriverPostgres {
		if production {
			sqlDB.SetMaxIdleConns(20)
			sqlDB.SetMaxOpenConns(100)
			sqlDB.SetConnMaxLifetime(time.Hour)
		} else {
			sqlDB.SetMaxIdleConns(5)
			sqlDB.SetMaxOpenConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	slog.Info("database ready", "driver", dbConfig.Driver)
	return db, nil
}

// OpenSQLite opens a file-backed SQLite store with foreign keys enabled and a
// single writer connection.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func openPostgres(c *config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("could not connect to postgres: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}
