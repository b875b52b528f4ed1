package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool bounds the connections held by the postgres note store. The board
// writes a single row per mutation, so a handful is plenty.
type Pool struct {
	MaxIdle     int
	MaxOpen     int
	MaxLifetime time.Duration
}

var DefaultPool = Pool{MaxIdle: 2, MaxOpen: 10, MaxLifetime: time.Hour}

// OpenPostgres connects with gorm and applies pool. Only slow statements and
// failures are logged; a missing board row is not a failure.
func OpenPostgres(dsn string, pool Pool) (*gorm.DB, error) {
	sqlLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true, // keep note bodies out of the log
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: sqlLogger})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(pool.MaxIdle)
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetConnMaxLifetime(pool.MaxLifetime)

	return db, nil
}
