package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Storage is the workout history database (libsql / turso).
type Storage struct {
	DB *sql.DB
}

// Open connects to the database at connURL and makes sure the schema exists.
// A non-empty authToken is appended to the URL the way turso expects it.
func Open(connURL, authToken string) (*Storage, error) {
	if connURL == "" {
		return nil, fmt.Errorf("database connection string not set")
	}

	dsn, err := withAuthToken(connURL, authToken)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", redact(connURL), err)
	}

	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS workouts (
            id TEXT PRIMARY KEY,
            preset TEXT NOT NULL,
            rounds INTEGER NOT NULL,
            work_seconds INTEGER NOT NULL,
            rest_seconds INTEGER NOT NULL,
            started_at TEXT NOT NULL,
            finished_at TEXT NOT NULL,
            total_ms INTEGER NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workout_laps (
            id TEXT PRIMARY KEY,
            workout_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            total_ms INTEGER NOT NULL,
            split_ms INTEGER NOT NULL,
            FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func withAuthToken(connURL, token string) (string, error) {
	if token == "" || strings.HasPrefix(connURL, "file:") {
		return connURL, nil
	}
	u, err := url.Parse(connURL)
	if err != nil {
		return "", fmt.Errorf("Failed to parse connection string: %w", err)
	}
	q := u.Query()
	q.Set("authToken", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// redact drops the query string so tokens never reach error messages.
func redact(connURL string) string {
	if i := strings.IndexByte(connURL, '?'); i >= 0 {
		return connURL[:i]
	}
	return connURL
}
