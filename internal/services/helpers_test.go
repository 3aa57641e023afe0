package services

import (
	"context"
	"errors"

	"github.com/meetin/meetin/internal/models"
	"github.com/meetin/meetin/internal/repositories/kv"
)

var errBoom = errors.New("boom")

// faultyStore wraps a memory store and fails the configured keys.
type faultyStore struct {
	*kv.MemoryStore
	getErr map[string]error
	setErr map[string]error
	sets   []string
}

func newFaultyStore() *faultyStore {
	return &faultyStore{
		MemoryStore: kv.NewMemoryStore(),
		getErr:      map[string]error{},
		setErr:      map[string]error{},
	}
}

func (f *faultyStore) Get(ctx context.Context, key string) (string, error) {
	if err := f.getErr[key]; err != nil {
		return "", err
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key, value string) error {
	f.sets = append(f.sets, key)
	if err := f.setErr[key]; err != nil {
		return err
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func validProfile() models.Profile {
	return models.Profile{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Phone:           "5551234567",
		Email:           "ada@example.com",
		Address:         "12 Analytical St",
		Password:        "Abc!23",
		ConfirmPassword: "Abc!23",
	}
}
