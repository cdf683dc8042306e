// Package storage provides the durable key-value port used to persist the
// counter and preferences, plus its backends.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/five82/jaap/internal/config"
)

// Store is a text key-value store. Get reports a missing key with ok=false
// and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Description() string
	Close() error
}

// Open builds the backend selected by cfg.Backend and prepares its schema.
func Open(ctx context.Context, cfg config.Storage) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "file":
		return NewFileStore(cfg.Path)
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
		}
		return NewRedisStore(client, cfg.Prefix), nil
	case "sqlite":
		if err := ensureSQLiteDir(cfg.Path); err != nil {
			return nil, err
		}
		return openSQL(ctx, "sqlite", cfg.Path, func(db *sql.DB) *SQLStore {
			return NewSQLiteStore(db, cfg.Table)
		})
	case "postgres":
		return openSQL(ctx, "pgx", cfg.DSN, func(db *sql.DB) *SQLStore {
			return NewPostgresStore(db, cfg.Table)
		})
	case "mysql":
		return openSQL(ctx, "mysql", cfg.DSN, func(db *sql.DB) *SQLStore {
			return NewMySQLStore(db, cfg.Table)
		})
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		store := NewMongoStore(client.Database(cfg.Database).Collection(cfg.Collection))
		store.client = client
		if err := store.Setup(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("setup mongo: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func openSQL(ctx context.Context, driverName, dsn string, build func(*sql.DB) *SQLStore) (Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%s storage requires a dsn or path", driverName)
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	store := build(db)
	if err := store.Setup(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setup %s: %w", driverName, err)
	}
	return store, nil
}

// ensureSQLiteDir creates the parent directory of a plain database path.
// URI and in-memory DSNs are left to the driver.
func ensureSQLiteDir(path string) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == ":memory:" || strings.HasPrefix(trimmed, "file:") {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return fmt.Errorf("create sqlite dir: %w", err)
	}
	return nil
}
