// Package redis resolves the active session id from a Redis key.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type Source struct {
	client *redis.Client
	key    string
}

// New wraps an existing client. The caller owns the client's lifecycle.
func New(client *redis.Client, key string) *Source {
	return &Source{client: client, key: key}
}

// CurrentSessionID reads the session id stored under the configured key.
// A missing key means no session is active and reports id 0.
func (s *Source) CurrentSessionID(ctx context.Context) (int64, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read session key %q: %w", s.key, err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse session id %q: %w", val, err)
	}

	return id, nil
}
