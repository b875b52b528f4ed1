// Package draft holds the lifecycle of the composer: the unsaved note a user
// types at the top of the board before it becomes a card.
package draft

import (
	"context"

	"noteboard-be/internal/entity"
	"noteboard-be/pkg/richtext"
)

// Creator turns committed content into a note. It returns nil when the
// content was rejected.
type Creator interface {
	Create(ctx context.Context, content string) *entity.Note
}

type Options struct {
	DefaultSize string
}

// State is a read-only copy of the composer used for rendering.
type State struct {
	Content        string
	Dirty          bool
	Expanded       bool
	ToolbarVisible bool
}

// Session is not safe for concurrent use; callers hold their own lock.
type Session struct {
	creator  Creator
	size     string
	template string

	content  string
	dirty    bool
	expanded bool
	toolbar  bool
}

func New(creator Creator, opts Options) *Session {
	size := opts.DefaultSize
	if size == "" {
		size = richtext.DefaultFontSize
	}
	s := &Session{
		creator:  creator,
		size:     size,
		template: richtext.EmptyTemplate(size),
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.content = s.template
	s.dirty = false
	s.expanded = false
	s.toolbar = false
}

// OnContentChange records what the editor reports after every keystroke.
func (s *Session) OnContentChange(content string) {
	s.content = richtext.NormalizeDefaultSize(content, s.size)
	s.dirty = s.content != s.template
	s.toolbar = s.dirty
}

func (s *Session) OnFocus() {
	s.expanded = true
}

func (s *Session) OnBlur(ctx context.Context) (*entity.Note, bool) {
	return s.Commit(ctx)
}

func (s *Session) OnOutsideInteraction(ctx context.Context) (*entity.Note, bool) {
	return s.Commit(ctx)
}

// Commit saves a dirty, non-blank draft as a new note and resets the
// composer. Otherwise it only collapses. Dirty is cleared before the note is
// created so a trigger that follows right behind finds nothing to commit.
func (s *Session) Commit(ctx context.Context) (*entity.Note, bool) {
	if !s.dirty || richtext.IsBlank(s.content) {
		s.expanded = false
		return nil, false
	}

	content := s.content
	s.dirty = false
	note := s.creator.Create(ctx, content)
	s.reset()

	return note, note != nil
}

func (s *Session) Snapshot() State {
	return State{
		Content:        s.content,
		Dirty:          s.dirty,
		Expanded:       s.expanded,
		ToolbarVisible: s.toolbar,
	}
}
