package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"noteboard-be/internal/entity"
	"noteboard-be/internal/mapper"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/pkg/events"
	"noteboard-be/pkg/gesture"
	"noteboard-be/pkg/richtext"

	"github.com/google/uuid"
)

const noteModule = "NOTE"

var ErrNoteNotFound = errors.New("note not found")

type INoteService interface {
	Load(ctx context.Context)
	Create(ctx context.Context, content string) *entity.Note
	UpdateContent(ctx context.Context, id string, content string) error
	Reorder(ctx context.Context, id string, targetId string) bool
	Move(ctx context.Context, id string, direction gesture.Direction) bool
	Search(query string) []entity.Note
	List() []entity.Note
	Get(id string) (*entity.Note, bool)
}

type NoteServiceOptions struct {
	Key          string
	WriteTimeout time.Duration
	Now          func() time.Time
	NewID        func() string
}

type noteService struct {
	store     contract.NoteStore
	mapper    *mapper.NoteMapper
	publisher IPublisherService
	logger    logger.ILogger

	key          string
	writeTimeout time.Duration
	now          func() time.Time
	newID        func() string

	mu    sync.RWMutex
	notes []entity.Note
}

func NewNoteService(
	store contract.NoteStore,
	noteMapper *mapper.NoteMapper,
	publisher IPublisherService,
	log logger.ILogger,
	opts NoteServiceOptions,
) INoteService {
	s := &noteService{
		store:        store,
		mapper:       noteMapper,
		publisher:    publisher,
		logger:       log,
		key:          opts.Key,
		writeTimeout: opts.WriteTimeout,
		now:          opts.Now,
		newID:        opts.NewID,
		notes:        []entity.Note{},
	}
	if s.key == "" {
		s.key = "notes"
	}
	if s.writeTimeout <= 0 {
		s.writeTimeout = 2 * time.Second
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	return s
}

// Load replaces the in-memory collection with the stored one. Anything that
// cannot be read or parsed leaves the board empty.
func (s *noteService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = []entity.Note{}

	data, err := s.store.Read(ctx, s.key)
	if errors.Is(err, contract.ErrKeyNotFound) {
		s.logger.Info(noteModule, "No stored notes, starting empty", map[string]interface{}{"key": s.key})
		return
	}
	if err != nil {
		s.logger.Error(noteModule, "Failed to read stored notes", map[string]interface{}{"key": s.key, "error": err.Error()})
		return
	}

	notes, dropped, err := s.mapper.Decode(data)
	if err != nil {
		s.logger.Error(noteModule, "Malformed stored notes, starting empty", map[string]interface{}{"key": s.key, "error": err.Error()})
		return
	}
	if dropped > 0 {
		s.logger.Warn(noteModule, "Dropped invalid stored notes", map[string]interface{}{"dropped": dropped})
	}

	s.notes = notes
	s.logger.Info(noteModule, "Notes loaded", map[string]interface{}{"count": len(notes)})
}

func (s *noteService) Create(ctx context.Context, content string) *entity.Note {
	if richtext.IsBlank(content) {
		return nil
	}

	s.mu.Lock()
	note := entity.Note{
		Id:        s.newID(),
		Content:   content,
		CreatedAt: s.now(),
	}
	s.notes = append([]entity.Note{note}, s.notes...)
	s.persist(ctx)
	s.mu.Unlock()

	s.publish(ctx, events.NoteCreated, note.Id)
	return &note
}

func (s *noteService) UpdateContent(ctx context.Context, id string, content string) error {
	if richtext.IsBlank(content) {
		return nil
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Warn(noteModule, "Update of unknown note", map[string]interface{}{"note_id": id})
		return ErrNoteNotFound
	}
	s.notes[idx].Content = content
	s.persist(ctx)
	s.mu.Unlock()

	s.publish(ctx, events.NoteUpdated, id)
	return nil
}

// Reorder moves id to the index targetId holds before the move. Ids are
// resolved against the full collection regardless of any active filter.
func (s *noteService) Reorder(ctx context.Context, id string, targetId string) bool {
	if id == targetId {
		return false
	}

	s.mu.Lock()
	from, to := s.indexOf(id), s.indexOf(targetId)
	if from < 0 || to < 0 {
		s.mu.Unlock()
		s.logger.Warn(noteModule, "Reorder with unknown note", map[string]interface{}{"note_id": id, "target_id": targetId})
		return false
	}
	s.notes = arrayMove(s.notes, from, to)
	s.persist(ctx)
	s.mu.Unlock()

	s.publish(ctx, events.NotesReordered, id)
	return true
}

// Move swaps id with its neighbour in the full collection.
func (s *noteService) Move(ctx context.Context, id string, direction gesture.Direction) bool {
	s.mu.RLock()
	idx := s.indexOf(id)
	target := ""
	switch {
	case idx < 0:
	case direction == gesture.Up && idx > 0:
		target = s.notes[idx-1].Id
	case direction == gesture.Down && idx < len(s.notes)-1:
		target = s.notes[idx+1].Id
	}
	s.mu.RUnlock()

	if target == "" {
		return false
	}
	return s.Reorder(ctx, id, target)
}

func (s *noteService) Search(query string) []entity.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := strings.TrimSpace(query) == ""
	out := make([]entity.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if all || richtext.ContainsFold(n.Content, query) {
			out = append(out, n)
		}
	}
	return out
}

func (s *noteService) List() []entity.Note {
	return s.Search("")
}

func (s *noteService) Get(id string) (*entity.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	note := s.notes[idx]
	return &note, true
}

func (s *noteService) indexOf(id string) int {
	for i, n := range s.notes {
		if n.Id == id {
			return i
		}
	}
	return -1
}

// persist writes the full collection. Callers hold s.mu. A failed write is
// logged and the in-memory collection stays authoritative; the next mutation
// writes everything again.
func (s *noteService) persist(ctx context.Context) {
	data, err := s.mapper.Encode(s.notes)
	if err != nil {
		s.logger.Error(noteModule, "Failed to encode notes", map[string]interface{}{"error": err.Error()})
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()

	if err := s.store.Write(writeCtx, s.key, data); err != nil {
		s.logger.Error(noteModule, "Failed to persist notes", map[string]interface{}{"key": s.key, "count": len(s.notes), "error": err.Error()})
	}
}

func (s *noteService) publish(ctx context.Context, eventType, noteID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewNoteEvent(eventType, noteID, s.now())); err != nil {
		s.logger.Warn(noteModule, "Failed to publish board event", map[string]interface{}{"type": eventType, "error": err.Error()})
	}
}

// arrayMove removes the element at from and inserts it at to.
func arrayMove(notes []entity.Note, from, to int) []entity.Note {
	out := make([]entity.Note, 0, len(notes))
	moved := notes[from]
	for i, n := range notes {
		if i != from {
			out = append(out, n)
		}
	}
	out = append(out, entity.Note{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
