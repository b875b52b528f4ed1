package service

import (
	"context"
	"testing"
	"time"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/mapper"
	"noteboard-be/internal/repository/memory"
	"noteboard-be/pkg/richtext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardFixture struct {
	*noteFixture
	board IBoardService
}

func newBoardFixture(t *testing.T) *boardFixture {
	t.Helper()
	nf := newNoteFixture(t)
	board := NewBoardService(
		nf.svc,
		memory.NewSessionRepository(time.Minute),
		mapper.NewNoteMapper(richtext.NewSanitizer(richtext.DefaultCapabilities("16px"))),
		nf.logger,
		BoardServiceOptions{DragThreshold: 5, Capabilities: richtext.DefaultCapabilities("16px")},
	)
	return &boardFixture{noteFixture: nf, board: board}
}

func (f *boardFixture) send(t *testing.T, event dto.BoardEvent) []dto.BoardMessage {
	t.Helper()
	out, err := f.board.Handle(context.Background(), "s1", event)
	require.NoError(t, err)
	return out
}

func messageTypes(msgs []dto.BoardMessage) []string {
	out := []string{}
	for _, m := range msgs {
		out = append(out, m.Type)
	}
	return out
}

func findMessage(t *testing.T, msgs []dto.BoardMessage, typ string) dto.BoardMessage {
	t.Helper()
	for _, m := range msgs {
		if m.Type == typ {
			return m
		}
	}
	t.Fatalf("no %s message in %v", typ, messageTypes(msgs))
	return dto.BoardMessage{}
}

func (f *boardFixture) layout(t *testing.T) {
	t.Helper()
	notes := f.svc.List()
	cards := make([]dto.CardLayoutDto, 0, len(notes))
	for i, n := range notes {
		cards = append(cards, dto.CardLayoutDto{Id: n.Id, Rect: dto.RectDto{X: 0, Y: 100 + float64(i)*60, W: 200, H: 50}})
	}
	f.send(t, dto.BoardEvent{
		Type:     dto.EventLayout,
		Bounds:   &dto.RectDto{X: 0, Y: 0, W: 200, H: 1000},
		Composer: &dto.RectDto{X: 0, Y: 0, W: 200, H: 80},
		Cards:    cards,
	})
}

func TestBoardService_OpenReusesSession(t *testing.T) {
	f := newBoardFixture(t)

	a := f.board.Open("s1")
	b := f.board.Open("s1")
	assert.Same(t, a, b)

	fresh := f.board.Open("")
	assert.NotEmpty(t, fresh.ID)
	assert.NotEqual(t, "s1", fresh.ID)
}

func TestBoardService_Search(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	f.svc.Create(ctx, "<p>world</p>")
	f.svc.Create(ctx, "<p>hello</p>")

	out := f.send(t, dto.BoardEvent{Type: dto.EventSearch, Query: "wor"})
	state := findMessage(t, out, dto.MessageBoard).Data.(dto.BoardStateDto)
	require.Len(t, state.Notes, 1)
	assert.Equal(t, "<p>world</p>", state.Notes[0].Content)

	// The filter sticks to the session.
	rendered := f.board.Render("s1")
	state = findMessage(t, rendered, dto.MessageBoard).Data.(dto.BoardStateDto)
	assert.Equal(t, "wor", state.Query)
	assert.Len(t, state.Notes, 1)
}

func TestBoardService_TapNavigates(t *testing.T) {
	f := newBoardFixture(t)
	note := f.svc.Create(context.Background(), "<p>tap me</p>")
	f.layout(t)

	f.send(t, dto.BoardEvent{Type: dto.EventPointerDown, NoteId: note.Id, X: 10, Y: 110})
	out := f.send(t, dto.BoardEvent{Type: dto.EventPointerUp, X: 12, Y: 111})

	nav := findMessage(t, out, dto.MessageNavigate).Data.(dto.NavigateDto)
	assert.Equal(t, "/note/"+note.Id, nav.Path)
}

func TestBoardService_DragReorders(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	b := f.svc.Create(ctx, "<p>b</p>")
	a := f.svc.Create(ctx, "<p>a</p>")
	f.layout(t) // a at y=100, b at y=160

	f.send(t, dto.BoardEvent{Type: dto.EventPointerDown, NoteId: a.Id, X: 10, Y: 110})
	out := f.send(t, dto.BoardEvent{Type: dto.EventPointerMove, X: 10, Y: 130})
	assert.Equal(t, dto.DragStart, findMessage(t, out, dto.MessageDrag).Data.(dto.DragStateDto).Phase)

	out = f.send(t, dto.BoardEvent{Type: dto.EventPointerMove, X: 10, Y: 170})
	over := findMessage(t, out, dto.MessageDrag).Data.(dto.DragStateDto)
	assert.Equal(t, dto.DragOver, over.Phase)
	assert.Equal(t, b.Id, over.TargetId)

	out = f.send(t, dto.BoardEvent{Type: dto.EventPointerUp, X: 10, Y: 170})
	assert.Equal(t, []string{dto.MessageDrag, dto.MessageBoard}, messageTypes(out))
	assert.Equal(t, []string{b.Id, a.Id}, ids(f.svc.List()))
}

func TestBoardService_DragWhileFilteredReordersById(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	pie := f.svc.Create(ctx, "<p>apple pie</p>")
	banana := f.svc.Create(ctx, "<p>banana</p>")
	tart := f.svc.Create(ctx, "<p>apple tart</p>")
	require.Equal(t, []string{tart.Id, banana.Id, pie.Id}, ids(f.svc.List()))

	out := f.send(t, dto.BoardEvent{Type: dto.EventSearch, Query: "apple"})
	state := findMessage(t, out, dto.MessageBoard).Data.(dto.BoardStateDto)
	require.Len(t, state.Notes, 2)

	// Only the two visible cards are laid out; banana is hidden between them.
	f.send(t, dto.BoardEvent{
		Type:   dto.EventLayout,
		Bounds: &dto.RectDto{X: 0, Y: 0, W: 200, H: 1000},
		Cards: []dto.CardLayoutDto{
			{Id: tart.Id, Rect: dto.RectDto{X: 0, Y: 100, W: 200, H: 50}},
			{Id: pie.Id, Rect: dto.RectDto{X: 0, Y: 160, W: 200, H: 50}},
		},
	})

	f.send(t, dto.BoardEvent{Type: dto.EventPointerDown, NoteId: tart.Id, X: 10, Y: 110})
	f.send(t, dto.BoardEvent{Type: dto.EventPointerMove, X: 10, Y: 140})
	f.send(t, dto.BoardEvent{Type: dto.EventPointerMove, X: 10, Y: 185})
	out = f.send(t, dto.BoardEvent{Type: dto.EventPointerUp, X: 10, Y: 185})

	drop := findMessage(t, out, dto.MessageDrag).Data.(dto.DragStateDto)
	assert.Equal(t, dto.DragDrop, drop.Phase)
	assert.Equal(t, pie.Id, drop.TargetId)

	// tart takes the index pie held in the full collection.
	assert.Equal(t, []string{banana.Id, pie.Id, tart.Id}, ids(f.svc.List()))

	state = findMessage(t, out, dto.MessageBoard).Data.(dto.BoardStateDto)
	require.Len(t, state.Notes, 2)
	assert.Equal(t, pie.Id, state.Notes[0].Id)
	assert.Equal(t, tart.Id, state.Notes[1].Id)
}

func TestBoardService_PointerBeforeLayoutKeepsDraft(t *testing.T) {
	f := newBoardFixture(t)

	f.send(t, dto.BoardEvent{Type: dto.EventDraftFocus})
	f.send(t, dto.BoardEvent{Type: dto.EventDraftChange, Content: "<p>half typed</p>"})

	out := f.send(t, dto.BoardEvent{Type: dto.EventPointerDown, X: 10, Y: 10})
	assert.Empty(t, out)
	assert.Empty(t, f.svc.List())

	draft := findMessage(t, f.board.Render("s1"), dto.MessageDraft).Data.(dto.DraftStateDto)
	assert.True(t, draft.Dirty)
	assert.True(t, draft.Expanded)
}

func TestBoardService_CancelLeavesOrder(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	f.svc.Create(ctx, "<p>b</p>")
	a := f.svc.Create(ctx, "<p>a</p>")
	before := ids(f.svc.List())
	f.layout(t)

	f.send(t, dto.BoardEvent{Type: dto.EventPointerDown, NoteId: a.Id, X: 10, Y: 110})
	f.send(t, dto.BoardEvent{Type: dto.EventPointerMove, X: 10, Y: 170})
	out := f.send(t, dto.BoardEvent{Type: dto.EventCancel})

	assert.Equal(t, dto.DragCancel, findMessage(t, out, dto.MessageDrag).Data.(dto.DragStateDto).Phase)
	assert.Equal(t, before, ids(f.svc.List()))
}

func TestBoardService_KeyMove(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	b := f.svc.Create(ctx, "<p>b</p>")
	a := f.svc.Create(ctx, "<p>a</p>")
	f.layout(t)

	out := f.send(t, dto.BoardEvent{Type: dto.EventKeyMove, NoteId: a.Id, Direction: "down"})
	assert.Contains(t, messageTypes(out), dto.MessageBoard)
	assert.Equal(t, []string{b.Id, a.Id}, ids(f.svc.List()))

	f.layout(t)
	out = f.send(t, dto.BoardEvent{Type: dto.EventKeyMove, NoteId: a.Id, Direction: "down"})
	assert.Empty(t, out)
	assert.Equal(t, []string{b.Id, a.Id}, ids(f.svc.List()))
}

func TestBoardService_DraftCommitsOnOutsidePointer(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	b := f.svc.Create(ctx, "<p>world</p>")
	a := f.svc.Create(ctx, "<p>hello</p>")
	require.True(t, f.svc.Reorder(ctx, a.Id, b.Id))
	f.layout(t)

	f.send(t, dto.BoardEvent{Type: dto.EventDraftFocus})
	out := f.send(t, dto.BoardEvent{Type: dto.EventDraftChange, Content: "<p>note</p>"})
	assert.True(t, findMessage(t, out, dto.MessageDraft).Data.(dto.DraftStateDto).Dirty)

	// Clicking inside the composer does not commit.
	out = f.send(t, dto.BoardEvent{Type: dto.EventPointerDown, X: 10, Y: 10})
	assert.Empty(t, out)

	out = f.send(t, dto.BoardEvent{Type: dto.EventPointerDown, X: 10, Y: 900})
	assert.Equal(t, []string{dto.MessageDraft, dto.MessageBoard}, messageTypes(out))

	draft := findMessage(t, out, dto.MessageDraft).Data.(dto.DraftStateDto)
	assert.Equal(t, richtext.EmptyTemplate("16px"), draft.Content)
	assert.False(t, draft.Dirty)

	notes := f.svc.List()
	require.Len(t, notes, 3)
	assert.Equal(t, "note", richtext.PlainText(notes[0].Content))
	assert.Equal(t, []string{b.Id, a.Id}, ids(notes[1:]))

	// The blur that follows the outside click finds nothing left to commit.
	out = f.send(t, dto.BoardEvent{Type: dto.EventDraftBlur})
	assert.Equal(t, []string{dto.MessageDraft}, messageTypes(out))
	assert.Len(t, f.svc.List(), 3)
}

func TestBoardService_UnknownEvent(t *testing.T) {
	f := newBoardFixture(t)
	_, err := f.board.Handle(context.Background(), "s1", dto.BoardEvent{Type: "explode"})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}
