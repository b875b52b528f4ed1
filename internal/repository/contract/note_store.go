package contract

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// NoteStore is the durable key/value home of the serialized note collection.
// Read returns ErrKeyNotFound when nothing was ever written under key.
type NoteStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Close() error
}
