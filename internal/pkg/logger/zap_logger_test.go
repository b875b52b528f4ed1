package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLogger_WritesReadableEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.log")

	l := NewFileLogger(path)
	l.Info("NoteService", "note created", map[string]interface{}{"note_id": "a"})
	l.Warn("NoteService", "write failed", nil)
	l.Error("NoteService", "storage failure", map[string]interface{}{"error": "disk full"})
	require.NoError(t, l.Sync())

	entries, err := ReadLogs(path, "", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "storage failure", entries[0].Message)
	assert.Equal(t, "NoteService", entries[0].Module)
	assert.Equal(t, "disk full", entries[0].Details["error"])
	assert.NotEmpty(t, entries[0].Caller)

	errorsOnly, err := ReadLogs(path, "ERROR", 10, 0)
	require.NoError(t, err)
	assert.Len(t, errorsOnly, 1)

	paged, err := ReadLogs(path, "", 10, 2)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "note created", paged[0].Message)
}

func TestReadLogs_MissingFile(t *testing.T) {
	entries, err := ReadLogs(filepath.Join(t.TempDir(), "nope.log"), "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadLogs_SkipsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.log")
	data := "not json\n{\"level\":\"INFO\",\"message\":\"ok\"}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	entries, err := ReadLogs(path, "", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ok", entries[0].Message)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("m", "msg", nil)
	l.Info("m", "msg", nil)
	l.Error("m", "msg", map[string]interface{}{"error": "x"})
	assert.NoError(t, l.Sync())
}

func TestFileLogger_DropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.log")

	l := NewFileLogger(path)
	l.Debug("Hub", "noisy", nil)
	l.Info("Hub", "kept", nil)

	entries, err := ReadLogs(path, "", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, "INFO", entries[0].Level)
}
