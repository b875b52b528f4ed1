package implementation

import (
	"fmt"

	"noteboard-be/internal/config"
	"noteboard-be/internal/model"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/pkg/database"
)

const (
	DriverMemory   = "memory"
	DriverDisk     = "disk"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// NewNoteStore opens the store selected by STORE_DRIVER.
func NewNoteStore(cfg *config.Config) (contract.NoteStore, error) {
	switch cfg.Store.Driver {
	case DriverMemory:
		return NewMemoryNoteStore(), nil
	case DriverDisk:
		return NewDiskNoteStore(cfg.Store.DiskPath)
	case DriverRedis:
		return NewRedisNoteStoreFromURL(cfg.App.RedisURL), nil
	case DriverPostgres:
		if cfg.Store.Connection == "" {
			return nil, fmt.Errorf("postgres store: DB_CONNECTION_STRING is not set")
		}
		return newGormNoteStoreFromDSN(cfg.Store.Connection)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newGormNoteStoreFromDSN(dsn string) (contract.NoteStore, error) {
	db, err := database.OpenPostgres(dsn, database.DefaultPool)
	if err != nil {
		return nil, fmt.Errorf("postgres store: connect: %w", err)
	}
	if err := db.AutoMigrate(&model.BoardKV{}); err != nil {
		return nil, fmt.Errorf("postgres store: migrate: %w", err)
	}
	return NewGormNoteStore(db), nil
}
