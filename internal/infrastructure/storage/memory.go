package storage

import (
	"context"
	"sync"
)

// MemoryStorage giữ object trong map; dùng cho tests
type MemoryStorage struct {
	mu      sync.RWMutex
	baseURL string
	Objects map[string][]byte
}

func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{baseURL: baseURL, Objects: make(map[string][]byte)}
}

func (s *MemoryStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = append([]byte(nil), data...)
	return s.baseURL + "/" + key, nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, key)
	return nil
}

func (s *MemoryStorage) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.Objects[key]
	return ok
}
