package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "meetin:"

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(k string) string {
	return r.prefix + k
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return v, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

var ErrReadInTransaction = errors.New("reads are not available inside a redis transaction")

// Transact queues the writes made by fn in a MULTI/EXEC pipeline. Reads
// inside fn fail with ErrReadInTransaction because results arrive only on EXEC.
func (r *RedisStore) Transact(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return fn(ctx, &redisTxStore{pipe: pipe, prefix: r.prefix})
	})
	if err != nil {
		return fmt.Errorf("redis transaction: %w", err)
	}
	return nil
}

type redisTxStore struct {
	pipe   redis.Pipeliner
	prefix string
}

func (t *redisTxStore) Get(ctx context.Context, key string) (string, error) {
	return "", ErrReadInTransaction
}

func (t *redisTxStore) Set(ctx context.Context, key string, value string) error {
	return t.pipe.Set(ctx, t.prefix+key, value, 0).Err()
}

func (t *redisTxStore) Remove(ctx context.Context, key string) error {
	return t.pipe.Del(ctx, t.prefix+key).Err()
}
