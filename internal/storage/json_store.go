package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type document struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// JSONStore keeps every key in a single JSON document that is rewritten on each Set.
// Values are stored as strings so they round-trip byte for byte.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.doc = &document{
		Version: 1,
		Entries: make(map[string]string),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'eatforce init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Entries == nil {
		doc.Entries = make(map[string]string)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	value, ok := s.doc.Entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(value), nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Entries[key] = string(value)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}
