package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewNoteEvent(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	e := NewNoteEvent(NoteCreated, "abc", at)

	assert.Equal(t, NoteCreated, e.EventType())
	assert.Equal(t, at, e.Timestamp())
	assert.Equal(t, "abc", NoteID(e))
}

func TestNoteIDMissing(t *testing.T) {
	e := BaseEvent{Type: NotesReordered}
	assert.Equal(t, "", NoteID(e))
}
