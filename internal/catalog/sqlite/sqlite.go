// Package sqlite loads a word-pack catalog from a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vovakirdan/palpite-server/internal/catalog"
)

// Store reads categories and words from a word-pack database.
type Store struct {
	db *sql.DB
}

// New opens the word-pack database at dbPath.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db}, nil
}

// NewWithSetup opens the database and runs a setup function first.
// Useful for tests to apply schema and seed data.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*Store, error) {
	s, err := New(dbPath)
	if err != nil {
		return nil, err
	}
	if setup != nil {
		if err := setup(s.db); err != nil {
			s.db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadCatalog reads every category and its words into memory.
func (s *Store) LoadCatalog(ctx context.Context) (catalog.Catalog, error) {
	query := `
		SELECT c.name, w.word
		FROM categories c
		JOIN words w ON w.category_id = c.id
		ORDER BY c.name, w.id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	c := catalog.Catalog{}
	for rows.Next() {
		var name, word string
		if err := rows.Scan(&name, &word); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		c[name] = append(c[name], word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
