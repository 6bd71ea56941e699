package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/credlock/argonpass"
)

const defaultRedisPrefix = "ph"

// RedisStore persists gob-encoded hash records in Redis under
// "<prefix>:<name>" keys.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisStore describes the newredisstore operation and its observable behavior.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
	}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

// Save describes the save operation and its observable behavior.
func (s *RedisStore) Save(ctx context.Context, name string, record *argonpass.Record, ttl time.Duration) error {
	encoded, err := record.Gob()
	if err != nil {
		return err
	}

	if err := s.redis.Set(ctx, s.key(name), encoded, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Load describes the load operation and its observable behavior.
func (s *RedisStore) Load(ctx context.Context, name string) (*argonpass.Record, error) {
	data, err := s.redis.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	rec, err := argonpass.DecodeGob(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecordCorrupt, err)
	}

	return rec, nil
}

// Delete describes the delete operation and its observable behavior.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := s.redis.Del(ctx, s.key(name)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}
