package ports

import (
	"context"

	"github.com/ibraschwan/karagul/internal/core/domain"
)

// SessionStore persists the bearer credential and the cached user snapshot
// under two fixed keys. Which session the context addresses is a backend
// concern: the Redis store reads a session id from ctx, the file and memory
// stores ignore it.
//
// Token and User never fail: when storage is unavailable or empty they
// return the zero value, so callers treat the session as anonymous rather
// than handling storage errors.
type SessionStore interface {
	// Save overwrites both keys. The token shape is not validated.
	Save(ctx context.Context, token string, user *domain.User) error
	// Token returns the stored credential, or "" when absent.
	Token(ctx context.Context) string
	// User returns the cached user snapshot, or nil when absent.
	User(ctx context.Context) *domain.User
	// Clear removes both keys unconditionally; clearing an empty store is a no-op.
	Clear(ctx context.Context)
}
