package dto

import "time"

// PersistedNote is the stored wire form of a note. Html is only read, for
// legacy collections that stored markup under "html".
type PersistedNote struct {
	Id        string `json:"id"`
	Content   string `json:"content"`
	Html      string `json:"html,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type CreateNoteRequest struct {
	Content string `json:"content"`
}

type CreateNoteResponse struct {
	Created bool          `json:"created"`
	Note    *NoteResponse `json:"note,omitempty"`
}

type UpdateNoteRequest struct {
	Id      string `validate:"required"`
	Content string `json:"content"`
}

type UpdateNoteResponse struct {
	Id string `json:"id"`
}

type ReorderNoteRequest struct {
	Id       string `validate:"required"`
	TargetId string `json:"target_id" validate:"required"`
}

type MoveNoteRequest struct {
	Id        string `validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type ReorderNoteResponse struct {
	Moved bool     `json:"moved"`
	Order []string `json:"order"`
}

// NoteResponse carries both the sanitized markup for rendering and the raw
// content for editing.
type NoteResponse struct {
	Id        string    `json:"id"`
	Html      string    `json:"html"`
	Content   string    `json:"content"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"created_at"`
}

type ListNotesResponse struct {
	Query string          `json:"query"`
	Total int             `json:"total"`
	Notes []*NoteResponse `json:"notes"`
}

type ShowNoteResponse struct {
	Note     *NoteResponse `json:"note,omitempty"`
	Redirect string        `json:"redirect,omitempty"`
}
