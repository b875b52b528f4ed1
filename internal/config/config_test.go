package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg := Load()

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "notes", cfg.Store.Key)
	assert.Equal(t, 5.0, cfg.Board.DragThreshold)
	assert.Equal(t, "16px", cfg.Board.DefaultFontSize)
	assert.Equal(t, 2*time.Second, cfg.Store.WriteTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DRAG_THRESHOLD", "8.5")
	t.Setenv("STORE_WRITE_TIMEOUT_MS", "250")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SAMPLE_RATIO", "0.25")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 8.5, cfg.Board.DragThreshold)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.WriteTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Board.SessionTTL)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRatio)
	assert.Equal(t, "production", cfg.Tracing.Environment)
}

func TestGetEnvAsFloat_RejectsInvalid(t *testing.T) {
	t.Setenv("DRAG_THRESHOLD", "-1")
	assert.Equal(t, 5.0, getEnvAsFloat("DRAG_THRESHOLD", 5))

	t.Setenv("DRAG_THRESHOLD", "abc")
	assert.Equal(t, 5.0, getEnvAsFloat("DRAG_THRESHOLD", 5))
}
