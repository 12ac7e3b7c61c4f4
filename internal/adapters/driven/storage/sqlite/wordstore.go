package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/spella-cli/internal/core/domain"
	"github.com/custodia-labs/spella-cli/internal/core/ports/driven"
)

// Ensure WordStore implements the interface.
var _ driven.WordStore = (*WordStore)(nil)

// WordStore is a SQLite-backed implementation of driven.WordStore.
// It persists the user's personal word list so that words survive the
// engine's runtime-only lexicon across CLI invocations.
type WordStore struct {
	db   *sql.DB
	path string
}

// NewWordStore creates a new SQLite word store at the specified data
// directory. If dataDir is empty, defaults to ~/.spella/data/words.db.
func NewWordStore(dataDir string) (*WordStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".spella", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "words.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &WordStore{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *WordStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS words (
			word     TEXT PRIMARY KEY,
			example  TEXT NOT NULL DEFAULT '',
			added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Add stores a word. Re-adding an existing word updates its example.
func (s *WordStore) Add(ctx context.Context, word domain.PersonalWord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO words (word, example) VALUES (?, ?)
		ON CONFLICT(word) DO UPDATE SET example = excluded.example
	`, word.Word, word.Example)
	if err != nil {
		return fmt.Errorf("adding word: %w", err)
	}
	return nil
}

// Remove deletes a word from the list.
func (s *WordStore) Remove(ctx context.Context, word string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE word = ?`, word)
	if err != nil {
		return fmt.Errorf("removing word: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("removing word: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, word)
	}
	return nil
}

// List returns all words ordered alphabetically.
func (s *WordStore) List(ctx context.Context) ([]domain.PersonalWord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, example FROM words ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	defer rows.Close()

	var words []domain.PersonalWord
	for rows.Next() {
		var w domain.PersonalWord
		if err := rows.Scan(&w.Word, &w.Example); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	return words, nil
}

// Close closes the database connection.
func (s *WordStore) Close() error {
	if err := s.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return err
	}
	return nil
}

// Path returns the database file path.
func (s *WordStore) Path() string {
	return s.path
}
