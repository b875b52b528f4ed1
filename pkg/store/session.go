// Package store holds the per-view state of a connected board.
package store

import (
	"sync"
	"time"

	"noteboard-be/pkg/draft"
	"noteboard-be/pkg/gesture"
)

// Session is one connected board view: its search filter, its composer and
// the card under its pointer. Callers hold the session lock while touching
// any field.
type Session struct {
	sync.Mutex

	ID       string
	Query    string
	Composer gesture.Rect
	Draft    *draft.Session
	Gesture  *gesture.Router
	LastSeen time.Time
}

func NewSession(id string, d *draft.Session, router *gesture.Router) *Session {
	return &Session{
		ID:       id,
		Draft:    d,
		Gesture:  router,
		LastSeen: time.Now(),
	}
}

// Touch marks the session as active. Callers hold the lock.
func (s *Session) Touch() {
	s.LastSeen = time.Now()
}
