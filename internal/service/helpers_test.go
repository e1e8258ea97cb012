package service

import (
	"alcyxob/lesson-planner/internal/repository"
	"alcyxob/lesson-planner/internal/repository/memory"
	"context"
	"errors"
	"sync"
	"time"
)

// countingStore records writes on top of the in-memory store.
type countingStore struct {
	repository.KVStore
	mu   sync.Mutex
	sets int
	fail error
}

func newCountingStore() *countingStore {
	return &countingStore{KVStore: memory.NewKVStore()}
}

func (s *countingStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.sets++
	fail := s.fail
	s.mu.Unlock()
	if fail != nil {
		return fail
	}
	return s.KVStore.Set(ctx, key, value)
}

func (s *countingStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

type stubCompleter struct {
	reply   string
	err     error
	calls   int
	system  string
	prompts []string
}

func (c *stubCompleter) Complete(_ context.Context, system, user string) (string, error) {
	c.calls++
	c.system = system
	c.prompts = append(c.prompts, user)
	return c.reply, c.err
}

type stubExtractor struct {
	text string
	err  error
}

func (e stubExtractor) Extract(string, []byte) (string, error) { return e.text, e.err }

type fakeFiles struct {
	objects map[string][]byte
	putErr  error
	deleted []string
}

func newFakeFiles() *fakeFiles { return &fakeFiles{objects: map[string][]byte{}} }

func (f *fakeFiles) PutObject(_ context.Context, key, _ string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = data
	return nil
}

func (f *fakeFiles) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if _, ok := f.objects[key]; !ok {
		return "", errors.New("no such key")
	}
	return "https://files.example.test/" + key + "?sig=abc", nil
}

func (f *fakeFiles) DeleteObject(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }
