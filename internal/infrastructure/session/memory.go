package session

import (
	"context"
	"sync"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

type entry struct {
	token string
	user  *domain.User
}

// MemoryStore keeps sessions in process memory, partitioned by the session
// id in the context (contexts without one share a single slot). Suited to
// tests and single-instance development runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var _ ports.SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

func (s *MemoryStore) Save(ctx context.Context, token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[IDFromContext(ctx)] = entry{token: token, user: user}
	return nil
}

func (s *MemoryStore) Token(ctx context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[IDFromContext(ctx)].token
}

func (s *MemoryStore) User(ctx context.Context) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[IDFromContext(ctx)].user
}

func (s *MemoryStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, IDFromContext(ctx))
}
