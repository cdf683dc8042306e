package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// FileStore keeps every key in a single TOML document on disk. The document
// is read once and rewritten atomically on every Set.
type FileStore struct {
	path string

	mu      sync.Mutex
	values  map[string]string
	loaded  bool
	loadErr error
}

// NewFileStore returns a store backed by path. The file and its directory
// are created on the first Set.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("file storage requires a path")
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked()
	if s.loadErr != nil {
		return "", false, s.loadErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked()
	if s.loadErr != nil {
		// An unreadable document is replaced rather than blocking every write.
		s.values = map[string]string{}
		s.loadErr = nil
	}

	next := make(map[string]string, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	next[key] = value

	if err := s.writeLocked(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

func (s *FileStore) Description() string {
	return fmt.Sprintf("FileStore(%s)", s.path)
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) loadLocked() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.values = map[string]string{}

	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		s.loadErr = fmt.Errorf("read store: %w", err)
		return
	}

	var doc map[string]string
	if err := toml.Unmarshal(bytes, &doc); err != nil {
		s.loadErr = fmt.Errorf("parse store: %w", err)
		return
	}
	if doc != nil {
		s.values = doc
	}
}

func (s *FileStore) writeLocked(values map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	bytes, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.toml")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(bytes); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
