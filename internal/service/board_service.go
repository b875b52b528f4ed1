package service

import (
	"context"
	"errors"
	"fmt"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/mapper"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/repository/memory"
	"noteboard-be/pkg/draft"
	"noteboard-be/pkg/gesture"
	"noteboard-be/pkg/richtext"
	"noteboard-be/pkg/store"

	"github.com/google/uuid"
)

const boardModule = "BOARD"

var ErrUnknownEvent = errors.New("unknown board event")

type IBoardService interface {
	// Open returns the session with id, creating it when it does not exist
	// or has expired. An empty id gets a fresh random one.
	Open(sessionId string) *store.Session
	Close(sessionId string)
	Handle(ctx context.Context, sessionId string, event dto.BoardEvent) ([]dto.BoardMessage, error)
	Render(sessionId string) []dto.BoardMessage
	Capabilities() richtext.Capabilities
}

type BoardServiceOptions struct {
	DragThreshold float64
	Capabilities  richtext.Capabilities
}

type boardService struct {
	notes    INoteService
	sessions *memory.SessionRepository
	mapper   *mapper.NoteMapper
	logger   logger.ILogger
	opts     BoardServiceOptions
}

func NewBoardService(
	notes INoteService,
	sessions *memory.SessionRepository,
	noteMapper *mapper.NoteMapper,
	log logger.ILogger,
	opts BoardServiceOptions,
) IBoardService {
	return &boardService{
		notes:    notes,
		sessions: sessions,
		mapper:   noteMapper,
		logger:   log,
		opts:     opts,
	}
}

func (s *boardService) Capabilities() richtext.Capabilities {
	return s.opts.Capabilities
}

func (s *boardService) Open(sessionId string) *store.Session {
	if sessionId == "" {
		sessionId = uuid.New().String()
	}
	if sess, ok := s.sessions.Get(sessionId); ok {
		s.sessions.Save(sess)
		return sess
	}

	sess := store.NewSession(
		sessionId,
		draft.New(s.notes, draft.Options{DefaultSize: s.opts.Capabilities.DefaultSize}),
		gesture.NewRouter(s.notes, s.opts.DragThreshold),
	)
	s.sessions.Save(sess)
	s.logger.Info(boardModule, "Board session opened", map[string]interface{}{"session_id": sessionId})
	return sess
}

// Close forgets the interaction in flight. The draft is kept until the
// session expires.
func (s *boardService) Close(sessionId string) {
	sess, ok := s.sessions.Get(sessionId)
	if !ok {
		return
	}
	sess.Lock()
	sess.Gesture.Cancel()
	sess.Unlock()
}

func (s *boardService) Render(sessionId string) []dto.BoardMessage {
	sess := s.Open(sessionId)
	sess.Lock()
	defer sess.Unlock()

	return []dto.BoardMessage{s.boardMessage(sess), s.draftMessage(sess)}
}

func (s *boardService) Handle(ctx context.Context, sessionId string, event dto.BoardEvent) ([]dto.BoardMessage, error) {
	sess := s.Open(sessionId)
	sess.Lock()
	defer sess.Unlock()
	sess.Touch()

	point := gesture.Point{X: event.X, Y: event.Y}

	switch event.Type {
	case dto.EventBoardRefresh:
		return []dto.BoardMessage{s.boardMessage(sess), s.draftMessage(sess)}, nil

	case dto.EventSearch:
		sess.Query = event.Query
		return []dto.BoardMessage{s.boardMessage(sess)}, nil

	case dto.EventLayout:
		sess.Gesture.SetLayout(toRect(event.Bounds), toCards(event.Cards))
		sess.Composer = toRect(event.Composer)
		return nil, nil

	case dto.EventPointerDown:
		var out []dto.BoardMessage
		state := sess.Draft.Snapshot()
		// Until the view reports its layout the composer's position is unknown.
		if (state.Dirty || state.Expanded) && !sess.Composer.IsZero() && !sess.Composer.Contains(point) {
			_, created := sess.Draft.OnOutsideInteraction(ctx)
			out = append(out, s.draftMessage(sess))
			if created {
				out = append(out, s.boardMessage(sess))
			}
		}
		if event.NoteId != "" {
			sess.Gesture.PointerDown(event.NoteId, point)
		}
		return out, nil

	case dto.EventPointerMove:
		return s.intentMessages(sess, sess.Gesture.PointerMove(point)), nil

	case dto.EventPointerUp:
		wasDragging := sess.Gesture.Dragging()
		intent := sess.Gesture.PointerUp(ctx, point)
		if intent.Kind == gesture.IntentNone && wasDragging {
			return []dto.BoardMessage{dragMessage(dto.DragEnd, intent)}, nil
		}
		return s.intentMessages(sess, intent), nil

	case dto.EventCancel:
		return s.intentMessages(sess, sess.Gesture.Cancel()), nil

	case dto.EventKeyMove:
		intent := sess.Gesture.KeyboardMove(ctx, event.NoteId, gesture.Direction(event.Direction))
		return s.intentMessages(sess, intent), nil

	case dto.EventDraftChange:
		sess.Draft.OnContentChange(event.Content)
		return []dto.BoardMessage{s.draftMessage(sess)}, nil

	case dto.EventDraftFocus:
		sess.Draft.OnFocus()
		return []dto.BoardMessage{s.draftMessage(sess)}, nil

	case dto.EventDraftBlur:
		_, created := sess.Draft.OnBlur(ctx)
		out := []dto.BoardMessage{s.draftMessage(sess)}
		if created {
			out = append(out, s.boardMessage(sess))
		}
		return out, nil

	default:
		s.logger.Warn(boardModule, "Unknown board event", map[string]interface{}{"session_id": sess.ID, "type": event.Type})
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, event.Type)
	}
}

func (s *boardService) intentMessages(sess *store.Session, intent gesture.Intent) []dto.BoardMessage {
	switch intent.Kind {
	case gesture.IntentDragStart:
		return []dto.BoardMessage{dragMessage(dto.DragStart, intent)}
	case gesture.IntentDragOver:
		return []dto.BoardMessage{dragMessage(dto.DragOver, intent)}
	case gesture.IntentDragCancel:
		return []dto.BoardMessage{dragMessage(dto.DragCancel, intent)}
	case gesture.IntentReorder:
		return []dto.BoardMessage{dragMessage(dto.DragDrop, intent), s.boardMessage(sess)}
	case gesture.IntentNavigate:
		return []dto.BoardMessage{{Type: dto.MessageNavigate, Data: dto.NavigateDto{Path: intent.Path}}}
	default:
		return nil
	}
}

func (s *boardService) boardMessage(sess *store.Session) dto.BoardMessage {
	notes := s.notes.Search(sess.Query)
	return dto.BoardMessage{
		Type: dto.MessageBoard,
		Data: dto.BoardStateDto{
			Query: sess.Query,
			Notes: s.mapper.ToResponses(notes),
		},
	}
}

func (s *boardService) draftMessage(sess *store.Session) dto.BoardMessage {
	state := sess.Draft.Snapshot()
	return dto.BoardMessage{
		Type: dto.MessageDraft,
		Data: dto.DraftStateDto{
			Content:        state.Content,
			Dirty:          state.Dirty,
			Expanded:       state.Expanded,
			ToolbarVisible: state.ToolbarVisible,
		},
	}
}

func dragMessage(phase string, intent gesture.Intent) dto.BoardMessage {
	return dto.BoardMessage{
		Type: dto.MessageDrag,
		Data: dto.DragStateDto{
			Phase:    phase,
			NoteId:   intent.NoteID,
			TargetId: intent.TargetID,
			X:        intent.Pointer.X,
			Y:        intent.Pointer.Y,
		},
	}
}

func toRect(r *dto.RectDto) gesture.Rect {
	if r == nil {
		return gesture.Rect{}
	}
	return gesture.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func toCards(cards []dto.CardLayoutDto) []gesture.Card {
	out := make([]gesture.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, gesture.Card{ID: c.Id, Rect: gesture.Rect{X: c.Rect.X, Y: c.Rect.Y, W: c.Rect.W, H: c.Rect.H}})
	}
	return out
}
