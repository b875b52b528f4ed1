package service

import (
	"context"
	"errors"
	"sync"

	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/implementation"
	"noteboard-be/pkg/events"
)

var errStoreDown = errors.New("store down")

type countingStore struct {
	contract.NoteStore
	mu        sync.Mutex
	writes    int
	failRead  bool
	failWrite bool
}

func newCountingStore() *countingStore {
	return &countingStore{NoteStore: implementation.NewMemoryNoteStore()}
}

func (s *countingStore) Read(ctx context.Context, key string) ([]byte, error) {
	if s.failRead {
		return nil, errStoreDown
	}
	return s.NoteStore.Read(ctx, key)
}

func (s *countingStore) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	if s.failWrite {
		return errStoreDown
	}
	return s.NoteStore.Write(ctx, key, data)
}

func (s *countingStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

type logLine struct {
	level, module, message string
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *recordingLogger) record(level, module, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{level: level, module: module, message: message})
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("DEBUG", module, message)
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("INFO", module, message)
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("WARN", module, message)
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("ERROR", module, message)
}

func (l *recordingLogger) Sync() error { return nil }

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		if line.level == level {
			n++
		}
	}
	return n
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []string{}
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}
