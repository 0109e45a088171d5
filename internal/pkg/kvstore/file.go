package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sagarshinde/studyhub/internal/pkg/logger"
)

// FileStore persists each key as a JSON document in a directory. This is
// the default backend: it needs no external service and gives the same
// durability as the original client-local storage (survives a restart,
// single-instance semantics).
type FileStore struct {
	basePath string
	mu       sync.Mutex
}

// NewFileStore creates the backing directory if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create store directory")
		return nil, fmt.Errorf("failed to create store directory %s: %w", basePath, err)
	}
	return &FileStore{basePath: basePath}, nil
}

// pathFor maps a key to a file inside the base directory. Keys are simple
// identifiers ("resources", "user"); anything path-like is rejected.
func (s *FileStore) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\.") {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.basePath, key+".json"), nil
}

// Get reads the document stored under key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Set writes the document via a temp file and rename, so a crash mid-write
// leaves the previous document intact.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.basePath, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Delete removes the key's document. Absent documents are fine.
func (s *FileStore) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}
