package confirmations

import (
	"context"
	"sync"
	"time"
)

// MemoryStore хранит токены в памяти процесса. Используется без Redis и в тестах.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
	clock TimeProvider
}

type memoryItem struct {
	confirmation Confirmation
	deadline     time.Time
}

// NewMemoryStore создает хранилище в памяти
func NewMemoryStore(clock TimeProvider) *MemoryStore {
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &MemoryStore{items: make(map[string]memoryItem), clock: clock}
}

func (s *MemoryStore) Put(_ context.Context, c *Confirmation, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.evictLocked(now)
	s.items[c.Token] = memoryItem{confirmation: *c, deadline: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Take(_ context.Context, token string) (*Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[token]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.items, token)

	if !s.clock.Now().Before(item.deadline) {
		return nil, ErrNotFound
	}
	c := item.confirmation
	return &c, nil
}

func (s *MemoryStore) evictLocked(now time.Time) {
	for token, item := range s.items {
		if !now.Before(item.deadline) {
			delete(s.items, token)
		}
	}
}
