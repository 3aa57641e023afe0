// Package storage opens the key-value store selected by the configuration:
// a migrated SQLite file, a process-local map, or a Redis server.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/meetin/meetin/internal/config"
	"github.com/meetin/meetin/internal/filex"
	"github.com/meetin/meetin/internal/logging"
	"github.com/meetin/meetin/internal/migrations"
	"github.com/meetin/meetin/internal/repositories/kv"

	_ "modernc.org/sqlite"
)

// gooseLogger routes goose output through our logger at debug level.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(g.ctx, fmt.Sprintf(format, v...), "component", "goose")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(g.ctx, fmt.Sprintf(format, v...), "component", "goose")
	os.Exit(1)
}

func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{ctx: ctx, log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite database at dsn and applies migrations.
func InitDatabase(ctx context.Context, dsn string, log logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open builds the store for cfg.StoreDriver. The returned close function
// releases the underlying database or connection.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (kv.Store, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		dir, err := filex.EnsureDir(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		dsn := filepath.Join(dir, config.DatabaseFile) + "?_pragma=busy_timeout(5000)"
		db, err := InitDatabase(ctx, dsn, log)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing database: %w", err)
		}
		log.Debug(ctx, "sqlite store ready", "path", filepath.Join(dir, config.DatabaseFile))
		return kv.NewSQLiteStore(db), db.Close, nil

	case config.DriverMemory:
		log.Warn(ctx, "using in-memory store, nothing is kept after exit")
		return kv.NewMemoryStore(), func() error { return nil }, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store := kv.NewRedisStore(client, kv.DefaultRedisPrefix)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("redis %s unreachable: %w", cfg.RedisAddr, err)
		}
		log.Debug(ctx, "redis store ready", "addr", cfg.RedisAddr)
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
