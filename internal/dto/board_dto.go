package dto

import "encoding/json"

// Inbound view event types.
const (
	EventSearch       = "search"
	EventLayout       = "layout"
	EventPointerDown  = "pointer_down"
	EventPointerMove  = "pointer_move"
	EventPointerUp    = "pointer_up"
	EventCancel       = "cancel"
	EventKeyMove      = "key_move"
	EventDraftChange  = "draft_change"
	EventDraftFocus   = "draft_focus"
	EventDraftBlur    = "draft_blur"
	EventBoardRefresh = "refresh"
)

// Outbound message types.
const (
	MessageBoard    = "board"
	MessageDraft    = "draft"
	MessageDrag     = "drag"
	MessageNavigate = "navigate"
	MessageError    = "error"
)

type RectDto struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type CardLayoutDto struct {
	Id   string  `json:"id"`
	Rect RectDto `json:"rect"`
}

// BoardEvent is a single message sent by a connected board view.
type BoardEvent struct {
	Type      string          `json:"type"`
	NoteId    string          `json:"note_id,omitempty"`
	X         float64         `json:"x,omitempty"`
	Y         float64         `json:"y,omitempty"`
	Query     string          `json:"query,omitempty"`
	Content   string          `json:"content,omitempty"`
	Direction string          `json:"direction,omitempty"`
	Bounds    *RectDto        `json:"bounds,omitempty"`
	Composer  *RectDto        `json:"composer,omitempty"`
	Cards     []CardLayoutDto `json:"cards,omitempty"`
}

// BoardMessage is a single message sent to a connected board view.
type BoardMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func (m BoardMessage) Encode() []byte {
	data, _ := json.Marshal(m)
	return data
}

type BoardStateDto struct {
	Query string          `json:"query"`
	Notes []*NoteResponse `json:"notes"`
}

type DraftStateDto struct {
	Content        string `json:"content"`
	Dirty          bool   `json:"dirty"`
	Expanded       bool   `json:"expanded"`
	ToolbarVisible bool   `json:"toolbar_visible"`
}

// Drag phases.
const (
	DragStart  = "start"
	DragOver   = "over"
	DragDrop   = "drop"
	DragEnd    = "end"
	DragCancel = "cancel"
)

type DragStateDto struct {
	Phase    string  `json:"phase"`
	NoteId   string  `json:"note_id"`
	TargetId string  `json:"target_id,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type NavigateDto struct {
	Path string `json:"path"`
}

type BoardChangedMessage struct {
	Kind   string `json:"kind"`
	NoteId string `json:"note_id,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Store    string `json:"store"`
	Notes    int    `json:"notes"`
	Sessions int    `json:"sessions"`
}
