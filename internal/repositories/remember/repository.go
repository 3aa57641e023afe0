// Package remember persists the remember-me entries: the remembered email,
// the remembered password and the flag, as three independent keys.
package remember

import (
	"context"
	"errors"
	"fmt"

	"github.com/meetin/meetin/internal/models"
	"github.com/meetin/meetin/internal/repositories/kv"
)

const (
	EmailKey    = "rememberedEmail"
	PasswordKey = "rememberedPassword"
	FlagKey     = "rememberMe"

	flagOn  = "true"
	flagOff = "false"
)

type Repository interface {
	Load(ctx context.Context) (models.RememberMe, error)
	Save(ctx context.Context, email, password string) error
	Forget(ctx context.Context) error
}

type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

// Load reads the flag and, only when it is exactly "true", the remembered
// values. Missing values come back empty.
func (r *KVRepository) Load(ctx context.Context) (models.RememberMe, error) {
	var rm models.RememberMe

	flag, err := r.optional(ctx, FlagKey)
	if err != nil {
		return rm, err
	}
	if flag != flagOn {
		return rm, nil
	}
	rm.Enabled = true

	if rm.Email, err = r.optional(ctx, EmailKey); err != nil {
		return models.RememberMe{}, err
	}
	if rm.Password, err = r.optional(ctx, PasswordKey); err != nil {
		return models.RememberMe{}, err
	}
	return rm, nil
}

// Save writes email, password and then the flag.
func (r *KVRepository) Save(ctx context.Context, email, password string) error {
	return kv.Atomically(ctx, r.store, func(ctx context.Context, s kv.Store) error {
		if err := s.Set(ctx, EmailKey, email); err != nil {
			return fmt.Errorf("remember email: %w", err)
		}
		if err := s.Set(ctx, PasswordKey, password); err != nil {
			return fmt.Errorf("remember password: %w", err)
		}
		if err := s.Set(ctx, FlagKey, flagOn); err != nil {
			return fmt.Errorf("set remember flag: %w", err)
		}
		return nil
	})
}

// Forget removes the remembered values and stores the flag as "false"
// rather than deleting it.
func (r *KVRepository) Forget(ctx context.Context) error {
	return kv.Atomically(ctx, r.store, func(ctx context.Context, s kv.Store) error {
		if err := s.Remove(ctx, EmailKey); err != nil {
			return fmt.Errorf("forget email: %w", err)
		}
		if err := s.Remove(ctx, PasswordKey); err != nil {
			return fmt.Errorf("forget password: %w", err)
		}
		if err := s.Set(ctx, FlagKey, flagOff); err != nil {
			return fmt.Errorf("clear remember flag: %w", err)
		}
		return nil
	})
}

func (r *KVRepository) optional(ctx context.Context, key string) (string, error) {
	v, err := r.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	return v, err
}
