package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBoardctl(t *testing.T, args ...string) string {
	t.Helper()
	color.NoColor = true

	root := newRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestBoardctlAddListMove(t *testing.T) {
	t.Setenv("STORE_DRIVER", "disk")
	t.Setenv("STORE_DISK_PATH", t.TempDir())
	t.Setenv("LOG_FILE_PATH", t.TempDir()+"/board.log")

	assert.Contains(t, runBoardctl(t, "add", "buy", "milk"), "added")
	assert.Contains(t, runBoardctl(t, "add", "call", "<mom>"), "added")
	assert.Contains(t, runBoardctl(t, "add", " "), "empty note ignored")

	list := runBoardctl(t, "list")
	assert.Contains(t, list, "call <mom>")
	assert.Less(t, bytes.Index([]byte(list), []byte("call")), bytes.Index([]byte(list), []byte("buy milk")))

	filtered := runBoardctl(t, "list", "--query", "MILK")
	assert.Contains(t, filtered, "buy milk")
	assert.NotContains(t, filtered, "call")

	logs := runBoardctl(t, "logs", "--level", "INFO")
	assert.Contains(t, logs, "[NOTE] Notes loaded")
	assert.NotContains(t, logs, "WARN")
}

func TestBoardctlLogsEmpty(t *testing.T) {
	t.Setenv("LOG_FILE_PATH", t.TempDir()+"/board.log")

	assert.Contains(t, runBoardctl(t, "logs"), "no log entries")
}

func TestParagraphEscapes(t *testing.T) {
	assert.Equal(t, "<p>a &lt;b&gt;</p>", paragraph([]string{"a", "<b>"}))
}
