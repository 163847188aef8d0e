package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gyaneshwarpardhi/evochain/internal/config"
	"github.com/gyaneshwarpardhi/evochain/internal/species"
)

var (
	// ErrNotFound is returned when no detail is stored for an id.
	ErrNotFound = errors.New("species not found")
	// ErrUnavailable wraps failures of the backing service.
	ErrUnavailable = errors.New("store unavailable")
)

// Store keeps species details so chains can be resolved by id.
type Store interface {
	Put(ctx context.Context, d *species.Detail) error
	Get(ctx context.Context, id int) (*species.Detail, error)
	Delete(ctx context.Context, id int) error
	Close() error
}

// New opens the backend selected by conf.
func New(ctx context.Context, conf config.StoreConf) (Store, error) {
	switch conf.Backend {
	case "", "memory":
		return NewMemory(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis store %s: %w", conf.RedisAddr, err)
		}
		return NewRedis(client, conf.KeyPrefix, conf.TTL()), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", conf.Backend)
	}
}
