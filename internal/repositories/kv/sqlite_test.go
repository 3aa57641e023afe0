package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// one connection, otherwise every new connection opens a fresh :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user", `{"email":"a@b.c"}`))

	v, err := s.Get(ctx, "user")
	require.NoError(t, err)
	require.Equal(t, `{"email":"a@b.c"}`, v)
}

func TestSQLiteStore_Get_Missing(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(context.Background(), "absent")
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, v)
}

func TestSQLiteStore_EmptyValueIsNotMissing(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "rememberedEmail", ""))

	v, err := s.Get(ctx, "rememberedEmail")
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestSQLiteStore_Set_Overwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "old"))
	require.NoError(t, s.Set(ctx, "k", "new"))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "new", v)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"k"}, keys)
}

func TestSQLiteStore_Remove_IsIdempotent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "x", "1"))
	require.NoError(t, s.Remove(ctx, "x"))

	_, err := s.Get(ctx, "x")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Remove(ctx, "x"))
}

func TestSQLiteStore_Keys_Sorted(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "rememberMe", "false"))
	require.NoError(t, s.Set(ctx, "user", "{}"))
	require.NoError(t, s.Set(ctx, "rememberedEmail", "e"))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"rememberMe", "rememberedEmail", "user"}, keys)
}

func TestSQLiteStore_ClosedDB_ErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := s.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")
	require.NotErrorIs(t, err, ErrNotFound)

	require.ErrorContains(t, s.Set(ctx, "k", "v"), "failed to set metadata[k]")
	require.ErrorContains(t, s.Remove(ctx, "k"), "failed to delete metadata[k]")

	_, err = s.Keys(ctx)
	require.ErrorContains(t, err, "failed to list metadata")
}

func TestSQLiteStore_Transact_CommitsAll(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	err := s.Transact(ctx, func(ctx context.Context, tx Store) error {
		if err := tx.Set(ctx, "a", "1"); err != nil {
			return err
		}
		return tx.Set(ctx, "b", "2")
	})
	require.NoError(t, err)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestSQLiteStore_Transact_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", "before"))

	err := Atomically(ctx, s, func(ctx context.Context, tx Store) error {
		if err := tx.Set(ctx, "a", "after"); err != nil {
			return err
		}
		return errors.New("crash between writes")
	})
	require.EqualError(t, err, "crash between writes")

	v, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "before", v)
}

func TestSQLiteStore_Mock_DriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewSQLiteStore(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT value FROM metadata WHERE key = \?`).
		WithArgs("user").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectExec(`INSERT INTO metadata`).
		WithArgs("user", "{}").
		WillReturnError(errors.New("readonly database"))

	_, err = s.Get(ctx, "user")
	require.ErrorContains(t, err, "disk I/O error")

	err = s.Set(ctx, "user", "{}")
	require.ErrorContains(t, err, "readonly database")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Mock_NoRowsIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT value FROM metadata`).
		WithArgs("rememberMe").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err = NewSQLiteStore(db).Get(context.Background(), "rememberMe")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
