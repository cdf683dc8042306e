package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything jaap reads from config.toml.
type Config struct {
	Storage  Storage
	Quote    Quote
	Feedback Feedback
	Server   Server
	Log      Log
}

// Storage selects and parameterizes the key-value backend.
type Storage struct {
	Backend    string // file, memory, redis, sqlite, postgres, mysql, mongo
	Path       string // file and sqlite backends
	DSN        string // postgres, mysql, mongo URI
	Addr       string // redis
	Password   string // redis
	DB         int    // redis
	Prefix     string // key namespace
	Table      string // sql backends
	Database   string // mongo
	Collection string // mongo

	pathSet bool // Path came from the config file
}

// setPath pins Path so that Normalize leaves it alone.
func (s *Storage) setPath(path string) {
	s.Path = mustExpand(path)
	s.pathSet = true
}

// Normalize lowercases Backend and, unless a path was set explicitly,
// points Path at the backend's default file. Call it again after any
// override of Backend.
func (s *Storage) Normalize() {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	if s.Backend == "" {
		s.Backend = defaultBackend
	}
	if s.pathSet {
		return
	}
	s.Path = defaultStoragePath(s.Backend)
}

func defaultStoragePath(backend string) string {
	if backend == "sqlite" {
		return mustExpand(filepath.Join(defaultDataDir, "jaap.db"))
	}
	return mustExpand(filepath.Join(defaultDataDir, "store.toml"))
}

// Quote configures the daily message provider.
type Quote struct {
	Disabled bool
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
	Refresh  time.Duration
}

// Feedback configures tap and cycle cues.
type Feedback struct {
	Bell          bool
	TapSoundCmd   string
	CycleSoundCmd string
}

// Server configures the HTTP API.
type Server struct {
	Listen string
}

// Log configures the log file.
type Log struct {
	Path  string
	Level string
}

const (
	defaultConfigPath    = "~/.config/jaap/config.toml"
	defaultDataDir       = "~/.local/share/jaap"
	defaultLogPath       = "~/.local/state/jaap/jaap.log"
	defaultBackend       = "file"
	defaultPrefix        = "radha_jaap"
	defaultTable         = "jaap_kv"
	defaultRedisAddr     = "127.0.0.1:6379"
	defaultMongoDatabase = "jaap"
	defaultCollection    = "jaap_kv"
	defaultQuoteEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	defaultQuoteModel    = "gemini-3-flash-preview"
	defaultQuoteTimeout  = 10 * time.Second
	defaultQuoteRefresh  = 24 * time.Hour
	defaultListen        = "127.0.0.1:8108"
	defaultLogLevel      = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Storage: Storage{
			Backend:    defaultBackend,
			Path:       defaultStoragePath(defaultBackend),
			Addr:       defaultRedisAddr,
			Prefix:     defaultPrefix,
			Table:      defaultTable,
			Database:   defaultMongoDatabase,
			Collection: defaultCollection,
		},
		Quote: Quote{
			Endpoint: defaultQuoteEndpoint,
			Model:    defaultQuoteModel,
			APIKey:   apiKeyFromEnv(),
			Timeout:  defaultQuoteTimeout,
			Refresh:  defaultQuoteRefresh,
		},
		Feedback: Feedback{Bell: true},
		Server:   Server{Listen: defaultListen},
		Log: Log{
			Path:  mustExpand(defaultLogPath),
			Level: defaultLogLevel,
		},
	}
}

type rawConfig struct {
	Storage struct {
		Backend    string `toml:"backend"`
		Path       string `toml:"path"`
		DSN        string `toml:"dsn"`
		Addr       string `toml:"addr"`
		Password   string `toml:"password"`
		DB         int    `toml:"db"`
		Prefix     string `toml:"prefix"`
		Table      string `toml:"table"`
		Database   string `toml:"database"`
		Collection string `toml:"collection"`
	} `toml:"storage"`
	Quote struct {
		Disabled bool   `toml:"disabled"`
		Endpoint string `toml:"endpoint"`
		Model    string `toml:"model"`
		APIKey   string `toml:"api_key"`
		Timeout  string `toml:"timeout"`
		Refresh  string `toml:"refresh"`
	} `toml:"quote"`
	Feedback struct {
		Bell          *bool  `toml:"bell"`
		TapSoundCmd   string `toml:"tap_sound_cmd"`
		CycleSoundCmd string `toml:"cycle_sound_cmd"`
	} `toml:"feedback"`
	Server struct {
		Listen string `toml:"listen"`
	} `toml:"server"`
	Log struct {
		Path  string `toml:"path"`
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := apply(&cfg, raw); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func apply(cfg *Config, raw rawConfig) error {
	st := &cfg.Storage
	st.Backend = orDefault(raw.Storage.Backend, st.Backend)
	if p := strings.TrimSpace(raw.Storage.Path); p != "" {
		st.setPath(p)
	}
	st.Normalize()
	st.DSN = strings.TrimSpace(raw.Storage.DSN)
	st.Addr = orDefault(raw.Storage.Addr, st.Addr)
	st.Password = raw.Storage.Password
	st.DB = raw.Storage.DB
	st.Prefix = orDefault(raw.Storage.Prefix, st.Prefix)
	st.Table = orDefault(raw.Storage.Table, st.Table)
	st.Database = orDefault(raw.Storage.Database, st.Database)
	st.Collection = orDefault(raw.Storage.Collection, st.Collection)

	q := &cfg.Quote
	q.Disabled = raw.Quote.Disabled
	q.Endpoint = strings.TrimRight(orDefault(raw.Quote.Endpoint, q.Endpoint), "/")
	q.Model = orDefault(raw.Quote.Model, q.Model)
	q.APIKey = orDefault(raw.Quote.APIKey, q.APIKey)
	var err error
	if q.Timeout, err = parseDuration("quote.timeout", raw.Quote.Timeout, q.Timeout); err != nil {
		return err
	}
	if q.Refresh, err = parseDuration("quote.refresh", raw.Quote.Refresh, q.Refresh); err != nil {
		return err
	}

	if raw.Feedback.Bell != nil {
		cfg.Feedback.Bell = *raw.Feedback.Bell
	}
	cfg.Feedback.TapSoundCmd = strings.TrimSpace(raw.Feedback.TapSoundCmd)
	cfg.Feedback.CycleSoundCmd = strings.TrimSpace(raw.Feedback.CycleSoundCmd)

	cfg.Server.Listen = orDefault(raw.Server.Listen, cfg.Server.Listen)

	if p := strings.TrimSpace(raw.Log.Path); p != "" {
		cfg.Log.Path = mustExpand(p)
	}
	cfg.Log.Level = strings.ToLower(orDefault(raw.Log.Level, cfg.Log.Level))
	return nil
}

func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", field, err)
	}
	if d <= 0 {
		return fallback, nil
	}
	return d, nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func apiKeyFromEnv() string {
	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
