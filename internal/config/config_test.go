package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage.Backend != defaultBackend {
		t.Fatalf("Storage.Backend = %q, want %q", cfg.Storage.Backend, defaultBackend)
	}
	wantPath := filepath.Join(home, ".local", "share", "jaap", "store.toml")
	if cfg.Storage.Path != wantPath {
		t.Fatalf("Storage.Path = %q, want %q", cfg.Storage.Path, wantPath)
	}
	if cfg.Storage.Prefix != defaultPrefix {
		t.Fatalf("Storage.Prefix = %q, want %q", cfg.Storage.Prefix, defaultPrefix)
	}
	if cfg.Server.Listen != defaultListen {
		t.Fatalf("Server.Listen = %q, want %q", cfg.Server.Listen, defaultListen)
	}
	if cfg.Quote.Refresh != defaultQuoteRefresh {
		t.Fatalf("Quote.Refresh = %v, want %v", cfg.Quote.Refresh, defaultQuoteRefresh)
	}
	if !cfg.Feedback.Bell {
		t.Fatalf("Feedback.Bell = false, want true")
	}
	if !strings.HasPrefix(cfg.Log.Path, home) {
		t.Fatalf("Log.Path = %q, want it under HOME %q", cfg.Log.Path, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[storage]
backend = "  Redis "
addr = " 10.0.0.5:6380 "
prefix = "japa"
db = 2

[quote]
model = "gemini-pro"
api_key = "secret"
timeout = "3s"
refresh = "6h"
endpoint = "http://localhost:9999/v1/"

[feedback]
bell = false
cycle_sound_cmd = " paplay bell.oga "

[server]
listen = ":9000"

[log]
path = "~/logs/jaap.log"
level = "DEBUG"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage.Backend != "redis" {
		t.Fatalf("Storage.Backend = %q, want redis", cfg.Storage.Backend)
	}
	if cfg.Storage.Addr != "10.0.0.5:6380" {
		t.Fatalf("Storage.Addr = %q, want %q", cfg.Storage.Addr, "10.0.0.5:6380")
	}
	if cfg.Storage.Prefix != "japa" || cfg.Storage.DB != 2 {
		t.Fatalf("Storage = %+v, want prefix japa db 2", cfg.Storage)
	}
	if cfg.Quote.Model != "gemini-pro" || cfg.Quote.APIKey != "secret" {
		t.Fatalf("Quote = %+v", cfg.Quote)
	}
	if cfg.Quote.Timeout != 3*time.Second || cfg.Quote.Refresh != 6*time.Hour {
		t.Fatalf("Quote durations = %v/%v, want 3s/6h", cfg.Quote.Timeout, cfg.Quote.Refresh)
	}
	if cfg.Quote.Endpoint != "http://localhost:9999/v1" {
		t.Fatalf("Quote.Endpoint = %q, want trailing slash trimmed", cfg.Quote.Endpoint)
	}
	if cfg.Feedback.Bell {
		t.Fatalf("Feedback.Bell = true, want false")
	}
	if cfg.Feedback.CycleSoundCmd != "paplay bell.oga" {
		t.Fatalf("Feedback.CycleSoundCmd = %q", cfg.Feedback.CycleSoundCmd)
	}
	if cfg.Server.Listen != ":9000" {
		t.Fatalf("Server.Listen = %q, want :9000", cfg.Server.Listen)
	}
	if cfg.Log.Path != filepath.Join(home, "logs", "jaap.log") {
		t.Fatalf("Log.Path = %q", cfg.Log.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_SQLiteDefaultsToDatabaseFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\nbackend = \"sqlite\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(home, ".local", "share", "jaap", "jaap.db")
	if cfg.Storage.Path != want {
		t.Fatalf("Storage.Path = %q, want %q", cfg.Storage.Path, want)
	}
}

func TestLoad_APIKeyFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Quote.APIKey != "from-env" {
		t.Fatalf("Quote.APIKey = %q, want from-env", cfg.Quote.APIKey)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`[storage`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidDurationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[quote]\ntimeout = \"soon\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "quote.timeout") {
		t.Fatalf("Load error = %v, want quote.timeout error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestStorageNormalize_BackendOverrideMovesDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cfg.Storage.Backend = " SQLite "
	cfg.Storage.Normalize()

	if cfg.Storage.Backend != "sqlite" {
		t.Fatalf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	want := filepath.Join(home, ".local", "share", "jaap", "jaap.db")
	if cfg.Storage.Path != want {
		t.Fatalf("Storage.Path = %q, want %q", cfg.Storage.Path, want)
	}

	cfg.Storage.Backend = "file"
	cfg.Storage.Normalize()
	want = filepath.Join(home, ".local", "share", "jaap", "store.toml")
	if cfg.Storage.Path != want {
		t.Fatalf("Storage.Path after switching back = %q, want %q", cfg.Storage.Path, want)
	}
}

func TestStorageNormalize_KeepsExplicitPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\npath = \"~/counts/jaap.data\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Normalize()

	want := filepath.Join(home, "counts", "jaap.data")
	if cfg.Storage.Path != want {
		t.Fatalf("Storage.Path = %q, want %q", cfg.Storage.Path, want)
	}
}

func TestStorageNormalize_EmptyBackendDefaultsToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	st := Storage{}
	st.Normalize()
	if st.Backend != defaultBackend {
		t.Fatalf("Storage.Backend = %q, want %q", st.Backend, defaultBackend)
	}
	if filepath.Base(st.Path) != "store.toml" {
		t.Fatalf("Storage.Path = %q, want store.toml", st.Path)
	}
}
