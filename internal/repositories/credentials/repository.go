// Package credentials stores the one registered user. The record lives in
// the key-value store under a fixed key; writing a new one replaces the old.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/meetin/meetin/internal/models"
	"github.com/meetin/meetin/internal/repositories/kv"
)

const Key = "user"

var (
	ErrNotFound = errors.New("no credential record")

	// ErrCorruptRecord is returned for a stored value that decodes but
	// carries no email, such as "null" or "{}".
	ErrCorruptRecord = errors.New("credential record has no email")
)

// Repository is the single-slot credential store.
type Repository interface {
	GetCurrent(ctx context.Context) (*models.Credential, error)
	SetCurrent(ctx context.Context, c *models.Credential) error
}

type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

// GetCurrent returns ErrNotFound when nobody has registered yet.
func (r *KVRepository) GetCurrent(ctx context.Context) (*models.Credential, error) {
	raw, err := r.store.Get(ctx, Key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var c models.Credential
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("decode credential record: %w", err)
	}
	if c.Email == "" {
		return nil, fmt.Errorf("decode credential record: %w", ErrCorruptRecord)
	}
	return &c, nil
}

func (r *KVRepository) SetCurrent(ctx context.Context, c *models.Credential) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode credential record: %w", err)
	}
	return r.store.Set(ctx, Key, string(data))
}
