package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps one session as a Redis hash.
// Key format: session:<namespace>
type SessionStore struct {
	client *redis.Client
	key    string
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// Processes sharing a namespace share the session, last writer wins.
func NewSessionStore(client *redis.Client, namespace string) *SessionStore {
	return &SessionStore{client: client, key: sessionKey(namespace)}
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, s.key, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, s.key, key, value).Err(); err != nil {
		return fmt.Errorf("session set %s: %w", key, err)
	}
	return nil
}

func (s *SessionStore) Has(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.HExists(ctx, s.key, key).Result()
	if err != nil {
		return false, fmt.Errorf("session has %s: %w", key, err)
	}
	return ok, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func sessionKey(namespace string) string {
	if namespace == "" {
		namespace = "default"
	}
	return "session:" + namespace
}
