package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backend keeping each store in a single Redis hash keyed
// by record id. Values order follows the hash iteration order, which is
// fine: callers must not rely on it.
type Redis[T any] struct {
	client *redis.Client
	key    string
}

// NewRedis creates a Redis-backed store over the named hash.
func NewRedis[T any](client *redis.Client, name string) *Redis[T] {
	return &Redis[T]{client: client, key: "store:" + name}
}

func (r *Redis[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	doc, err := r.client.HGet(ctx, r.key, id).Result()
	if err == redis.Nil {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	rec, err := decode[T](doc)
	if err != nil {
		return zero, false, err
	}
	return rec, true, nil
}

func (r *Redis[T]) Insert(ctx context.Context, id string, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record %s: %w", r.key, id, err)
	}
	return r.client.HSet(ctx, r.key, id, string(doc)).Err()
}

func (r *Redis[T]) Remove(ctx context.Context, id string) (T, bool, error) {
	rec, ok, err := r.Get(ctx, id)
	if err != nil || !ok {
		return rec, ok, err
	}
	if err := r.client.HDel(ctx, r.key, id).Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return rec, true, nil
}

func (r *Redis[T]) Values(ctx context.Context) ([]T, error) {
	docs, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := decode[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
