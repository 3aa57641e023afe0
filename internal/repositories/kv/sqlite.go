package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meetin/meetin/internal/dbx"
)

type SQLiteStore struct {
	db dbx.DBTX
	tx dbx.TxBeginner
}

// NewSQLiteStore binds the store to db. Transact is available when db can
// begin transactions (*sql.DB); a store bound to a *sql.Tx runs Transact
// inline.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	s := &SQLiteStore{db: db}
	if b, ok := db.(dbx.TxBeginner); ok {
		s.tx = b
	}
	return s
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

// Keys lists every stored key; it backs diagnostics and tests.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM metadata ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate metadata rows: %w", err)
	}
	return keys, nil
}

func (s *SQLiteStore) Transact(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	if s.tx == nil {
		return fn(ctx, s)
	}
	return dbx.WithTx(ctx, s.tx, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteStore(tx))
	})
}
