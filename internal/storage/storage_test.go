package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/five82/jaap/internal/config"
)

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, config.Storage{Backend: "memory"})
	if err != nil {
		t.Fatalf("Open(memory): %v", err)
	}
	if _, ok := mem.(*MemoryStore); !ok {
		t.Fatalf("Open(memory) = %T, want *MemoryStore", mem)
	}

	path := filepath.Join(t.TempDir(), "store.toml")
	file, err := Open(ctx, config.Storage{Backend: "", Path: path})
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	if fs, ok := file.(*FileStore); !ok || fs.Path() != path {
		t.Fatalf("Open(file) = %#v, want FileStore at %s", file, path)
	}

	sqlitePath := filepath.Join(t.TempDir(), "jaap.db")
	db, err := Open(ctx, config.Storage{Backend: "SQLite", Path: sqlitePath})
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	defer db.Close()
	if err := db.Set(ctx, "mode", "MALA"); err != nil {
		t.Fatalf("sqlite Set: %v", err)
	}
}

func TestOpen_Redis(t *testing.T) {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis failed: %v", err)
	}
	defer server.Close()

	store, err := Open(context.Background(), config.Storage{Backend: "redis", Addr: server.Addr(), Prefix: "t"})
	if err != nil {
		t.Fatalf("Open(redis): %v", err)
	}
	defer store.Close()
	if got := store.Description(); got != "RedisStore(t)" {
		t.Fatalf("Description = %q", got)
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, config.Storage{Backend: "etcd"}); err == nil {
		t.Fatalf("Open(etcd) returned nil error")
	}
	if _, err := Open(ctx, config.Storage{Backend: "postgres"}); err == nil {
		t.Fatalf("Open(postgres) without dsn returned nil error")
	}
}

func TestOpen_SQLiteCreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data", "jaap.db")

	store, err := Open(ctx, config.Storage{Backend: "sqlite", Path: path})
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "sound", "false"); err != nil {
		t.Fatalf("sqlite Set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
}
