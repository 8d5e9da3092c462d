package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// fileStorage is a [Storage] persisted as a single JSON document on disk.
// The whole document is loaded at construction time and rewritten on every
// mutation; collection sizes here are far below anything that would make
// that a concern.
type fileStorage struct {
	path string

	mu    sync.RWMutex
	items map[string][]byte
}

type filePersistedState struct {
	Items map[string]json.RawMessage `json:"items"`
}

// NewFileStorage opens (or creates on first write) the JSON document at
// path and returns a [Storage] backed by it.
func NewFileStorage(path string) (Storage, error) {
	s := &fileStorage{
		path:  path,
		items: make(map[string][]byte),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode storage file: %w", err)
	}

	for k, v := range st.Items {
		s.items[k] = []byte(v)
	}

	return nil
}

// persist rewrites the document. Caller must hold s.mu.
func (s *fileStorage) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	state := filePersistedState{Items: make(map[string]json.RawMessage, len(s.items))}
	for k, v := range s.items {
		state.Items[k] = json.RawMessage(v)
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}

	return nil
}

func (s *fileStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *fileStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.items[key] = stored

	return s.persist()
}

func (s *fileStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return nil
	}
	delete(s.items, key)

	return s.persist()
}

func (s *fileStorage) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *fileStorage) Close() error {
	return nil
}
