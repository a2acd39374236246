// Package session implements the credential stores behind
// ports.SessionStore: a Redis backing for gateway browser sessions, a file
// backing for workstation use, and an in-memory backing for tests.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore keeps one credential pair per gateway session. The session id
// travels in the request context (see WithID); without one, every read
// reports an anonymous session and Save refuses to persist.
// Key format: session:<sid>:jwt / session:<sid>:user
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.SessionStore = (*RedisStore)(nil)

// NewRedisStore wraps client; entries expire after ttl (24h when <= 0).
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, token string, user *domain.User) error {
	sid := IDFromContext(ctx)
	if sid == "" {
		return fmt.Errorf("session: no session id in context")
	}
	snapshot, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: marshal user: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sid, "jwt"), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: save token: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sid, "user"), snapshot, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: save user: %w", err)
	}
	return nil
}

func (s *RedisStore) Token(ctx context.Context) string {
	sid := IDFromContext(ctx)
	if sid == "" {
		return ""
	}
	tok, err := s.client.Get(ctx, s.key(sid, "jwt")).Result()
	if err != nil {
		return ""
	}
	return tok
}

func (s *RedisStore) User(ctx context.Context) *domain.User {
	sid := IDFromContext(ctx)
	if sid == "" {
		return nil
	}
	raw, err := s.client.Get(ctx, s.key(sid, "user")).Bytes()
	if err != nil {
		return nil
	}
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

func (s *RedisStore) Clear(ctx context.Context) {
	sid := IDFromContext(ctx)
	if sid == "" {
		return
	}
	_ = s.client.Del(ctx, s.key(sid, "jwt"), s.key(sid, "user")).Err()
}

func (s *RedisStore) key(sid, field string) string {
	return fmt.Sprintf("session:%s:%s", sid, field)
}
