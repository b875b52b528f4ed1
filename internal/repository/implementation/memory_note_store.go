package implementation

import (
	"context"

	"noteboard-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// MemoryNoteStore keeps the collection in process memory. Nothing survives a
// restart; it backs tests and throwaway boards.
type MemoryNoteStore struct {
	cache *cache.Cache
}

func NewMemoryNoteStore() contract.NoteStore {
	return &MemoryNoteStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryNoteStore) Read(ctx context.Context, key string) ([]byte, error) {
	x, found := s.cache.Get(key)
	if !found {
		return nil, contract.ErrKeyNotFound
	}
	data := x.([]byte)
	return append([]byte(nil), data...), nil
}

func (s *MemoryNoteStore) Write(ctx context.Context, key string, data []byte) error {
	s.cache.Set(key, append([]byte(nil), data...), cache.NoExpiration)
	return nil
}

func (s *MemoryNoteStore) Close() error {
	return nil
}
