// Package catalog provides the storage layer for the book catalog.
//
// Callers depend on the Store interface only. Two implementations exist:
//
//   - MemoryCatalog: ordered, slice-backed store
//   - IndexedCatalog: MemoryCatalog plus lookup by author (AuthorFinder)
//
// # Interface Implementation
//
//	var _ Store = (*MemoryCatalog)(nil)
//	var _ Store = (*IndexedCatalog)(nil)
//	var _ AuthorFinder = (*IndexedCatalog)(nil)
//
// # Usage
//
//	store, err := catalog.New(catalog.BackendIndexed)
//	_ = store.Add(entities.NewBook("Dune", "Herbert", "1965"))
//	books, _ := store.List()
//
// Remove deletes every book with the given title. Removing a title that is
// not present is a no-op, not an error.
package catalog

import (
	"errors"
	"fmt"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Store is the capability set every catalog backend provides.
// In-memory backends never return an error; the error results exist so
// fallible backends can satisfy the same contract.
type Store interface {
	// Add appends a book. Duplicate titles are accepted.
	Add(book entities.Book) error

	// Remove deletes all books whose title equals title.
	Remove(title string) error

	// List returns a snapshot of the books in insertion order.
	List() ([]entities.Book, error)
}

// AuthorFinder is implemented by stores that can look books up by author.
type AuthorFinder interface {
	FindByAuthor(author string) ([]entities.Book, error)
}

// Backend names accepted by New.
const (
	BackendMemory  = "memory"
	BackendIndexed = "indexed"
)

var ErrUnknownBackend = errors.New("catalog: unknown backend")

// New builds an empty store for the named backend.
func New(backend string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryCatalog(), nil
	case BackendIndexed:
		return NewIndexedCatalog(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Seed adds books to store in order.
func Seed(store Store, books []entities.Book) error {
	for _, book := range books {
		if err := store.Add(book); err != nil {
			return fmt.Errorf("failed to seed %q: %w", book.Title, err)
		}
	}
	return nil
}
