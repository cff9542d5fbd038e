package credstore

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = token, true
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = "", false
	return nil
}

func (s *MemoryStore) Close() error { return nil }
