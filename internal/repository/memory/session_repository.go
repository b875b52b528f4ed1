package memory

import (
	"time"

	"noteboard-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps board view sessions around for ttl after their last
// use, so a view that reconnects finds its draft again.
type SessionRepository struct {
	sessions *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	sweep := ttl / 2
	if sweep > 10*time.Minute {
		sweep = 10 * time.Minute
	}
	return &SessionRepository{sessions: cache.New(ttl, sweep)}
}

// OnEvict registers fn for sessions leaving the repository, expired or
// deleted. fn runs outside the repository lock.
func (r *SessionRepository) OnEvict(fn func(*store.Session)) {
	r.sessions.OnEvicted(func(_ string, v interface{}) {
		if sess, ok := v.(*store.Session); ok {
			fn(sess)
		}
	})
}

// Save stores session and restarts its expiry.
func (r *SessionRepository) Save(session *store.Session) {
	r.sessions.SetDefault(session.ID, session)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	v, found := r.sessions.Get(sessionID)
	if !found {
		return nil, false
	}
	sess, ok := v.(*store.Session)
	return sess, ok
}

func (r *SessionRepository) Delete(sessionID string) {
	r.sessions.Delete(sessionID)
}

// Count includes sessions that expired but were not swept yet.
func (r *SessionRepository) Count() int {
	return r.sessions.ItemCount()
}
