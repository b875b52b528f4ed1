package specification

import (
	"testing"

	"noteboard-be/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestByKeyBuildsWhereClause(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost"}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Skipf("dry run dialector unavailable: %v", err)
	}

	var row model.BoardKV
	stmt := ByKey{Key: "notes"}.Apply(db.Model(&model.BoardKV{})).First(&row).Statement

	assert.Contains(t, stmt.SQL.String(), `"board_kv"`)
	assert.Contains(t, stmt.SQL.String(), "key = $1")
	assert.Equal(t, []interface{}{"notes"}, stmt.Vars[:1])
}
