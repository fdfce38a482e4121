// Package session persists each dashboard session's selected region.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/redis/go-redis/v9"
)

// Store keeps one selected-region cell per session. Get and Put return
// constants.ErrSessionNotFound for unknown or expired sessions.
type Store interface {
	Create(ctx context.Context, id, region string) error
	Get(ctx context.Context, id string) (string, error)
	Put(ctx context.Context, id, region string) error
}

type Options struct {
	Backend string
	TTL     time.Duration
	Redis   *redis.Options
}

func New(opts Options) (Store, error) {
	switch opts.Backend {
	case "", constants.SessionBackendMemory:
		return NewMemoryStore(opts.TTL, time.Now), nil
	case constants.SessionBackendRedis:
		if opts.Redis == nil {
			return nil, fmt.Errorf("redis backend without redis options")
		}
		return NewRedisStore(redis.NewClient(opts.Redis), opts.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", opts.Backend)
	}
}
