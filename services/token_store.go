package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore holds the ephemeral authenticated-session flags. A token is
// present for the lifetime of the admin session and gone after logout or
// expiry.
type TokenStore interface {
	Put(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// MemoryTokenStore keeps session flags in process memory. It is the
// default backend: restarting the process ends every admin session.
type MemoryTokenStore struct {
	mu     sync.Mutex
	expiry map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{expiry: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Put(ctx context.Context, token string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiry[token] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	deadline, ok := s.expiry[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(s.expiry, token)
		return false, nil
	}
	return true, nil
}

func (s *MemoryTokenStore) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expiry, token)
	return nil
}

const sessionKeyPrefix = "session:"

// RedisTokenStore keeps session flags in Redis with a TTL, for deployments
// where admin sessions should survive a process restart.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Put(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+token, "true", ttl).Err()
}

func (s *RedisTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	_, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisTokenStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
