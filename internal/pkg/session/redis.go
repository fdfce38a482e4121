package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ehrenamt:session:"

// RedisStore shares sessions between dashboard replicas. Update cycles of
// one session are still serialized per process only.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func wrapErr(err error) error {
	if errors.Is(err, redis.Nil) {
		return constants.ErrSessionNotFound
	}
	return err
}

func (s *RedisStore) Create(ctx context.Context, id, region string) error {
	if err := s.client.Set(ctx, keyPrefix+id, region, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set, session-%s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	region, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		return "", wrapErr(err)
	}
	return region, nil
}

func (s *RedisStore) Put(ctx context.Context, id, region string) error {
	ok, err := s.client.SetXX(ctx, keyPrefix+id, region, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setxx, session-%s: %w", id, wrapErr(err))
	}
	if !ok {
		return constants.ErrSessionNotFound
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
