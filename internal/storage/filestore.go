package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in a single JSON file and rewrites the whole
// file on each change.
type FileStore struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
	file   string
}

// NewFileStore creates a file-backed store at filePath, loading existing
// data if the file is already present.
func NewFileStore(filePath string) (*FileStore, error) {
	s := &FileStore{
		values: make(map[string]json.RawMessage),
		file:   filePath,
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := s.load(); err != nil {
			return nil, fmt.Errorf("failed to load storage: %w", err)
		}
	}

	return s, nil
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *FileStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !json.Valid(value) {
		// Values are JSON blobs or plain strings; wrap anything that is
		// not already valid JSON so the file stays parseable.
		wrapped, err := json.Marshal(string(value))
		if err != nil {
			return fmt.Errorf("failed to encode value: %w", err)
		}
		value = wrapped
	}

	v := make(json.RawMessage, len(value))
	copy(v, value)
	s.values[key] = v
	return s.save()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.save()
}

// save rewrites the backing file with every stored key. The write goes
// through a temp file and rename so a crash cannot leave a torn file.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".portal-storage-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	return os.Rename(tmpName, s.file)
}

// load reads the backing file. A corrupt file is treated as empty rather
// than surfaced to the user.
func (s *FileStore) load() error {
	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		s.values = make(map[string]json.RawMessage)
		return nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]json.RawMessage)
	}
	if s.values == nil {
		s.values = make(map[string]json.RawMessage)
	}

	return nil
}
