package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lwenger/vocatrain/internal/models"
)

// JSONStore persists the whole store as one indented UTF-8 JSON file,
// overwritten wholesale on every save.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

// Load reads the store file. A missing file is a normal first run and yields
// an empty store; unreadable or corrupt content is reported as an error so
// the caller can decide to fall back.
func (s *JSONStore) Load(_ context.Context) (models.Store, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Store{}, nil
	}
	if err != nil {
		return models.Store{}, fmt.Errorf("failed to read store file %q: %w", s.path, err)
	}

	var store models.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return models.Store{}, fmt.Errorf("store file %q is corrupt: %w", s.path, err)
	}

	return store, nil
}

func (s *JSONStore) Save(_ context.Context, store models.Store) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file %q: %w", s.path, err)
	}

	return nil
}
