package driven

import (
	"context"

	"github.com/custodia-labs/spella-cli/internal/core/domain"
)

// WordStore persists the user's personal word list.
// Backed by SQLite. Words are replayed into the session's runtime
// lexicon every time a session is opened.
type WordStore interface {
	// Add stores a word, optionally with a model word for affixation.
	// Adding an existing word updates its example.
	Add(ctx context.Context, word domain.PersonalWord) error

	// Remove deletes a word. Returns domain.ErrNotFound if absent.
	Remove(ctx context.Context, word string) error

	// List returns all words ordered alphabetically.
	List(ctx context.Context) ([]domain.PersonalWord, error)

	// Close releases the underlying storage.
	Close() error
}
