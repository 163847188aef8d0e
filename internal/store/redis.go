package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gyaneshwarpardhi/evochain/internal/species"
)

// Redis stores details as JSON strings under prefix+id.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis wraps an existing client. A zero ttl stores without expiry.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (r *Redis) key(id int) string {
	return r.prefix + strconv.Itoa(id)
}

func (r *Redis) Put(ctx context.Context, d *species.Detail) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode species %d: %w", d.ID, err)
	}
	if err := r.client.Set(ctx, r.key(d.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set species %d: %w", ErrUnavailable, d.ID, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, id int) (*species.Detail, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get species %d: %w", ErrUnavailable, id, err)
	}
	var d species.Detail
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode species %d: %w", id, err)
	}
	return &d, nil
}

func (r *Redis) Delete(ctx context.Context, id int) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: redis del species %d: %w", ErrUnavailable, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
