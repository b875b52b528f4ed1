package implementation

import (
	"context"
	"errors"
	"fmt"

	"noteboard-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "noteboard:"

type RedisNoteStore struct {
	rdb *redis.Client
}

func NewRedisNoteStore(rdb *redis.Client) contract.NoteStore {
	return &RedisNoteStore{rdb: rdb}
}

// NewRedisNoteStoreFromURL accepts a redis:// URL or a bare host:port.
func NewRedisNoteStoreFromURL(url string) contract.NoteStore {
	opt, err := redis.ParseURL(url)
	if err != nil {
		opt = &redis.Options{Addr: url}
	}
	return NewRedisNoteStore(redis.NewClient(opt))
}

func (s *RedisNoteStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, contract.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis store: get %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisNoteStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.rdb.Set(ctx, redisKeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis store: set %s: %w", key, err)
	}
	return nil
}

func (s *RedisNoteStore) Close() error {
	return s.rdb.Close()
}
