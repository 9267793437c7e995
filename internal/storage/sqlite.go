// Package storage provides SQLite-based persistence for the color game:
// a namespaced key/value table for the best streak and a history of
// finished streaks. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *ulid.MonotonicEntropy
}

// StreakEntry represents one finished streak.
type StreakEntry struct {
	ID        string
	Namespace string
	Mode      string
	Length    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		);

		CREATE TABLE IF NOT EXISTS streaks (
			id TEXT PRIMARY KEY,
			namespace TEXT NOT NULL,
			mode TEXT NOT NULL,
			length INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_streaks_top ON streaks(namespace, length DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Get returns the value stored under key in the namespace.
// ok is false when no such entry exists.
func (s *Store) Get(namespace, key string) (value string, ok bool, err error) {
	err = s.db.QueryRow(
		"SELECT value FROM kv WHERE namespace = ? AND key = ?",
		namespace, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Set stores value under key in the namespace, replacing any previous value.
func (s *Store) Set(namespace, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (namespace, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Remove deletes key from the namespace. Removing a missing key is not an error.
func (s *Store) Remove(namespace, key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE namespace = ? AND key = ?", namespace, key)
	if err != nil {
		return fmt.Errorf("storage: cannot remove %s/%s: %w", namespace, key, err)
	}
	return nil
}

// SaveStreak records a finished streak. Returns the ID of the inserted record.
func (s *Store) SaveStreak(namespace, mode string, length int) (string, error) {
	id := s.newID()
	_, err := s.db.Exec(
		"INSERT INTO streaks (id, namespace, mode, length) VALUES (?, ?, ?, ?)",
		id, namespace, mode, length,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save streak: %w", err)
	}
	return id, nil
}

// TopStreaks retrieves the longest N streaks for the namespace.
// Ties are ordered oldest first.
func (s *Store) TopStreaks(namespace string, limit int) ([]StreakEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, namespace, mode, length, created_at
		 FROM streaks
		 WHERE namespace = ?
		 ORDER BY length DESC, id ASC
		 LIMIT ?`,
		namespace, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query streaks: %w", err)
	}
	defer rows.Close()

	var entries []StreakEntry
	for rows.Next() {
		var e StreakEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Namespace, &e.Mode, &e.Length, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearStreaks deletes the streak history for the namespace.
func (s *Store) ClearStreaks(namespace string) error {
	_, err := s.db.Exec("DELETE FROM streaks WHERE namespace = ?", namespace)
	if err != nil {
		return fmt.Errorf("storage: cannot clear streaks: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
