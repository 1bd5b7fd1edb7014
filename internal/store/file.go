package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const backendFile = "file"

// FileStore persists every key in a single JSON object on disk. Values must
// be valid JSON documents.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path. The file and its
// directory are created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		record(backendFile, "get", err)
		return nil, err
	}
	v, ok := items[key]
	if !ok {
		record(backendFile, "get", ErrNotFound)
		return nil, ErrNotFound
	}
	record(backendFile, "get", nil)
	return []byte(v), nil
}

// Put stores value under key and rewrites the file.
func (s *FileStore) Put(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		err := fmt.Errorf("value for %q is not valid JSON", key)
		record(backendFile, "put", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err == nil {
		items[key] = json.RawMessage(append([]byte(nil), value...))
		err = s.save(items)
	}
	record(backendFile, "put", err)
	return err
}

// Delete removes key and rewrites the file.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err == nil {
		if _, ok := items[key]; !ok {
			record(backendFile, "delete", nil)
			return nil
		}
		delete(items, key)
		err = s.save(items)
	}
	record(backendFile, "delete", err)
	return err
}

// Ping verifies the file, if present, is readable and well formed.
func (s *FileStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.load()
	return err
}

// Close is a no-op; every write is flushed immediately.
func (s *FileStore) Close(context.Context) error {
	return nil
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	items := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode store file: %w", err)
	}
	return items, nil
}

// save writes to a temporary file and renames it over the original so a
// crash never leaves a truncated file behind.
func (s *FileStore) save(items map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
