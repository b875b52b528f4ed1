package implementation

import (
	"context"
	"errors"
	"fmt"

	"noteboard-be/internal/model"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/specification"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormNoteStore struct {
	db *gorm.DB
}

func NewGormNoteStore(db *gorm.DB) contract.NoteStore {
	return &GormNoteStore{db: db}
}

func (s *GormNoteStore) Read(ctx context.Context, key string) ([]byte, error) {
	var row model.BoardKV
	err := specification.ByKey{Key: key}.Apply(s.db.WithContext(ctx)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, contract.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres store: read %s: %w", key, err)
	}
	return []byte(row.Value), nil
}

func (s *GormNoteStore) Write(ctx context.Context, key string, data []byte) error {
	row := model.BoardKV{Key: key, Value: datatypes.JSON(data)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("postgres store: write %s: %w", key, err)
	}
	return nil
}

func (s *GormNoteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
