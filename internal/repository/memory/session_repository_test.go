package memory

import (
	"testing"
	"time"

	"noteboard-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	_, ok := repo.Get("s1")
	assert.False(t, ok)

	repo.Save(store.NewSession("s1", nil, nil))
	got, ok := repo.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, 1, repo.Count())

	repo.Delete("s1")
	_, ok = repo.Get("s1")
	assert.False(t, ok)
}

func TestSessionRepositoryExpires(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	repo.Save(store.NewSession("s1", nil, nil))

	time.Sleep(40 * time.Millisecond)
	_, ok := repo.Get("s1")
	assert.False(t, ok)
}

func TestSessionRepositoryOnEvict(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	var evicted []string
	repo.OnEvict(func(s *store.Session) { evicted = append(evicted, s.ID) })

	repo.Save(store.NewSession("s1", nil, nil))
	repo.Save(store.NewSession("s2", nil, nil))
	repo.Delete("s2")
	repo.Delete("missing")

	assert.Equal(t, []string{"s2"}, evicted)
}
