package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DBStore keeps blobs in the history database's kv table.
type DBStore struct {
	st *Storage
}

func NewDBStore(st *Storage) *DBStore {
	return &DBStore{st: st}
}

// Get returns the blob under key, or nil when there is none.
func (d *DBStore) Get(key string) ([]byte, error) {
	var value string
	err := d.st.DB.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to read %s: %w", key, err)
	}
	return []byte(value), nil
}

func (d *DBStore) Put(key string, value []byte) error {
	_, err := d.st.DB.Exec(
		`INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)`,
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to write %s: %w", key, err)
	}
	return nil
}
