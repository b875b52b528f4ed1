package model

import (
	"time"

	"gorm.io/datatypes"
)

// BoardKV is the key/value row backing the postgres note store. The whole
// serialized collection lives in Value under a single namespace key.
type BoardKV struct {
	Key       string         `gorm:"type:varchar(128);primaryKey"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (BoardKV) TableName() string {
	return "board_kv"
}
