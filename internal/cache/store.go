package cache

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/univc/univc/internal/kinds"
	_ "modernc.org/sqlite"
)

// Store is the persistent resolution cache, backed by sqlite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open resolution cache: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS resolutions (
			key         TEXT PRIMARY KEY,
			selected    TEXT NOT NULL,
			result_kind TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init resolution cache: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Get looks up a cached resolution.
func (s *Store) Get(key string) (Entry, bool, error) {
	var selected, encoded string
	err := s.db.QueryRow(
		`SELECT selected, result_kind FROM resolutions WHERE key = ?`, key,
	).Scan(&selected, &encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("cache get: %w", err)
	}
	k, err := kinds.Decode(encoded)
	if err != nil {
		// A corrupt row is treated as a miss; it will be overwritten.
		return Entry{}, false, nil
	}
	return Entry{Selected: selected, ResultKind: k}, true, nil
}

// Put stores a resolution, replacing any previous entry for the key.
func (s *Store) Put(key string, e Entry) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO resolutions (key, selected, result_kind) VALUES (?, ?, ?)`,
		key, e.Selected, kinds.Encode(e.ResultKind),
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}
