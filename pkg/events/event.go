package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	NoteCreated    = "NOTE_CREATED"
	NoteUpdated    = "NOTE_UPDATED"
	NotesReordered = "NOTES_REORDERED"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewNoteEvent builds a board change event about one note.
func NewNoteEvent(eventType, noteID string, at time.Time) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       map[string]interface{}{"note_id": noteID},
		OccurredAt: at,
	}
}

// NoteID returns the note an event refers to, if any.
func NoteID(e Event) string {
	id, _ := e.Payload()["note_id"].(string)
	return id
}
