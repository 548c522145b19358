// Package state provides the persistence port for the client-side state
// machines. A Store loads and saves one JSON document; the file-backed
// implementation mirrors the browser's local-storage persistence, and the
// in-memory one exists for tests.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("state: not found")

// Store persists a single state document.
type Store interface {
	Load(v interface{}) error
	Save(v interface{}) error
}

// FileStore persists state as pretty-printed JSON at a fixed path.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(v interface{}) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	return nil
}

func (s *FileStore) Save(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	data []byte
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load(v interface{}) error {
	if s.data == nil {
		return ErrNotFound
	}
	return json.Unmarshal(s.data, v)
}

func (s *MemStore) Save(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}
