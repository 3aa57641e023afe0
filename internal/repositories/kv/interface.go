package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// Transactor is implemented by stores that can run fn against a
// transactional view of themselves.
type Transactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

// Atomically runs fn inside a transaction when s is a Transactor and
// directly against s otherwise.
func Atomically(ctx context.Context, s Store, fn func(ctx context.Context, s Store) error) error {
	if t, ok := s.(Transactor); ok {
		return t.Transact(ctx, fn)
	}
	return fn(ctx, s)
}
