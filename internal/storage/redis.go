package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each key as a plain Redis string under Prefix.
type RedisStore struct {
	Client    redis.UniversalClient
	Prefix    string
	Separator string
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "radha_jaap"
	}
	return &RedisStore{
		Client:    client,
		Prefix:    prefix,
		Separator: "_",
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.Client == nil {
		return "", false, fmt.Errorf("redis store requires Client")
	}
	v, err := s.Client.Get(ctx, s.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if s.Client == nil {
		return fmt.Errorf("redis store requires Client")
	}
	return s.Client.Set(ctx, s.redisKey(key), value, 0).Err()
}

func (s *RedisStore) Description() string {
	return fmt.Sprintf("RedisStore(%s)", s.Prefix)
}

func (s *RedisStore) Close() error {
	if s.Client == nil {
		return nil
	}
	return s.Client.Close()
}

func (s *RedisStore) redisKey(key string) string {
	if s.Prefix == "" {
		return key
	}
	return s.Prefix + s.Separator + key
}
