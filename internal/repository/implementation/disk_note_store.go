package implementation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"noteboard-be/internal/repository/contract"

	"github.com/peterbourgon/diskv/v3"
)

// DiskNoteStore writes each key to its own file under basePath. Writes go
// through a temp dir and a rename so a crash never leaves half a file.
type DiskNoteStore struct {
	d *diskv.Diskv
}

func NewDiskNoteStore(basePath string) (contract.NoteStore, error) {
	if basePath == "" {
		return nil, errors.New("disk store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("disk store: ensure base path: %w", err)
	}

	return &DiskNoteStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, ".tmp"),
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskNoteStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, contract.ErrKeyNotFound
		}
		return nil, fmt.Errorf("disk store: read %s: %w", key, err)
	}
	return data, nil
}

func (s *DiskNoteStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("disk store: write %s: %w", key, err)
	}
	return nil
}

func (s *DiskNoteStore) Close() error {
	return nil
}
