package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/misterclayt0n/chrono/internal/models"
)

// BlobStore is a tiny key-value store for the persisted timer state.
type BlobStore interface {
	// Get returns nil, nil when the key is absent.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// FileStore keeps one JSON file per key in Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to read %s: %w", key, err)
	}
	return data, nil
}

// Put replaces the file atomically via a temp file in the same directory.
func (f *FileStore) Put(key string, value []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("Failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(f.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("Failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("Failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("Failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("Failed to replace %s: %w", key, err)
	}
	return nil
}

// StateRepo reads and writes the timer blob under models.StateKey.
type StateRepo struct {
	store  BlobStore
	logger *slog.Logger
}

func NewStateRepo(store BlobStore, logger *slog.Logger) *StateRepo {
	return &StateRepo{store: store, logger: logger}
}

// Load never fails: a missing or unreadable blob yields the defaults.
func (r *StateRepo) Load() models.PersistedState {
	data, err := r.store.Get(models.StateKey)
	if err != nil {
		r.logger.Warn("failed to read timer state, using defaults", "err", err)
		return models.DefaultState()
	}
	state, err := models.DecodeState(data)
	if err != nil {
		r.logger.Warn("discarding malformed timer state", "err", err)
	}
	return state
}

// Save encodes and stores the state.
func (r *StateRepo) Save(state models.PersistedState) error {
	data, err := models.EncodeState(state)
	if err != nil {
		return fmt.Errorf("Failed to encode timer state: %w", err)
	}
	return r.store.Put(models.StateKey, data)
}
