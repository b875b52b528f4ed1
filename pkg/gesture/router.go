// Package gesture tells a tap on a card from a press-and-drag and turns
// drops and arrow keys into reorder requests.
package gesture

import (
	"context"

	"noteboard-be/pkg/navigation"
)

const DefaultThreshold = 5.0

type IntentKind string

const (
	IntentNone       IntentKind = "none"
	IntentNavigate   IntentKind = "navigate"
	IntentDragStart  IntentKind = "drag_start"
	IntentDragOver   IntentKind = "drag_over"
	IntentReorder    IntentKind = "reorder"
	IntentDragCancel IntentKind = "drag_cancel"
)

// Intent is what the view should do after an input.
type Intent struct {
	Kind     IntentKind
	NoteID   string
	TargetID string
	Path     string
	Pointer  Point
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Reorderer moves id to the position targetID holds.
type Reorderer interface {
	Reorder(ctx context.Context, id, targetID string) bool
}

type interaction struct {
	noteID    string
	origin    Point
	pointer   Point
	moved     bool
	dragging  bool
	candidate string
}

// Router tracks at most one pointer interaction. It is not safe for
// concurrent use.
type Router struct {
	reorderer Reorderer
	threshold float64

	bounds Rect
	cards  []Card

	active *interaction
}

func NewRouter(reorderer Reorderer, threshold float64) *Router {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Router{reorderer: reorderer, threshold: threshold}
}

// SetLayout replaces the displayed cards, in display order. A zero bounds
// rectangle makes the whole plane droppable.
func (r *Router) SetLayout(bounds Rect, cards []Card) {
	r.bounds = bounds
	r.cards = append([]Card(nil), cards...)
}

func (r *Router) Dragging() bool {
	return r.active != nil && r.active.dragging
}

func (r *Router) PointerDown(noteID string, p Point) {
	r.active = &interaction{noteID: noteID, origin: p, pointer: p}
}

func (r *Router) PointerMove(p Point) Intent {
	in := r.active
	if in == nil {
		return Intent{Kind: IntentNone}
	}
	in.pointer = p

	if !in.dragging {
		if in.origin.Dist(p) <= r.threshold {
			return Intent{Kind: IntentNone}
		}
		in.moved = true
		in.dragging = true
		return Intent{Kind: IntentDragStart, NoteID: in.noteID, Pointer: p}
	}

	in.candidate = ""
	if card, ok := r.candidateFor(in); ok {
		in.candidate = card.ID
	}
	return Intent{Kind: IntentDragOver, NoteID: in.noteID, TargetID: in.candidate, Pointer: p}
}

func (r *Router) PointerUp(ctx context.Context, p Point) Intent {
	in := r.active
	r.active = nil
	if in == nil {
		return Intent{Kind: IntentNone}
	}
	in.pointer = p

	if !in.dragging {
		// A release far from the press is not a tap, even without moves.
		if in.moved || in.origin.Dist(p) > r.threshold {
			return Intent{Kind: IntentNone}
		}
		return Intent{Kind: IntentNavigate, NoteID: in.noteID, Path: navigation.NotePath(in.noteID)}
	}

	if !r.inBounds(p) {
		return Intent{Kind: IntentDragCancel, NoteID: in.noteID}
	}
	card, ok := r.candidateFor(in)
	if !ok {
		return Intent{Kind: IntentDragCancel, NoteID: in.noteID}
	}
	if card.ID == in.noteID {
		return Intent{Kind: IntentNone, NoteID: in.noteID}
	}
	if !r.reorderer.Reorder(ctx, in.noteID, card.ID) {
		return Intent{Kind: IntentNone, NoteID: in.noteID}
	}
	return Intent{Kind: IntentReorder, NoteID: in.noteID, TargetID: card.ID}
}

// Cancel aborts the current interaction. The order is never touched during a
// drag, so there is nothing to restore.
func (r *Router) Cancel() Intent {
	in := r.active
	r.active = nil
	if in == nil || !in.dragging {
		return Intent{Kind: IntentNone}
	}
	return Intent{Kind: IntentDragCancel, NoteID: in.noteID}
}

// KeyboardMove swaps noteID with its neighbour in the displayed order.
// Moving past either edge does nothing.
func (r *Router) KeyboardMove(ctx context.Context, noteID string, dir Direction) Intent {
	idx := -1
	for i, c := range r.cards {
		if c.ID == noteID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Intent{Kind: IntentNone}
	}

	switch dir {
	case Up:
		idx--
	case Down:
		idx++
	default:
		return Intent{Kind: IntentNone}
	}
	if idx < 0 || idx >= len(r.cards) {
		return Intent{Kind: IntentNone, NoteID: noteID}
	}

	target := r.cards[idx].ID
	if !r.reorderer.Reorder(ctx, noteID, target) {
		return Intent{Kind: IntentNone, NoteID: noteID}
	}
	return Intent{Kind: IntentReorder, NoteID: noteID, TargetID: target}
}

func (r *Router) inBounds(p Point) bool {
	return r.bounds.IsZero() || r.bounds.Contains(p)
}

// candidateFor picks the card whose center is nearest the pointer. The
// dragged card itself is a valid candidate.
func (r *Router) candidateFor(in *interaction) (Card, bool) {
	if !r.inBounds(in.pointer) {
		return Card{}, false
	}
	return closest(in.pointer, r.cards)
}
