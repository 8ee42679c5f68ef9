package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
)

var ErrAuthorLookupUnsupported = errors.New("catalog does not support lookup by author")

// LibraryManager runs catalog operations against a catalog.Store and
// reports their outcome. It holds no books itself.
type LibraryManager struct {
	store    catalog.Store
	reporter Reporter
	logger   zerolog.Logger
}

// NewLibraryManager creates a manager over store.
func NewLibraryManager(store catalog.Store, reporter Reporter, logger zerolog.Logger) *LibraryManager {
	return &LibraryManager{
		store:    store,
		reporter: reporter,
		logger:   logger.With().Str("component", "library_manager").Logger(),
	}
}

// AddBook stores a new book and reports it as added.
// Input is stored as given; validation is up to the caller.
func (m *LibraryManager) AddBook(title, author, year string) error {
	book := entities.NewBook(title, author, year)
	if err := m.store.Add(book); err != nil {
		return fmt.Errorf("failed to add book %q: %w", title, err)
	}

	m.logger.Debug().Str("title", title).Str("author", author).Str("year", year).Msg("book added")
	m.reporter.BookAdded(title)
	return nil
}

// RemoveBook removes every book titled title. It reports success whether
// or not anything matched.
func (m *LibraryManager) RemoveBook(title string) error {
	if err := m.store.Remove(title); err != nil {
		return fmt.Errorf("failed to remove book %q: %w", title, err)
	}

	m.logger.Debug().Str("title", title).Msg("book removed")
	m.reporter.BookRemoved(title)
	return nil
}

// ListBooks reports the current catalog and returns the snapshot.
func (m *LibraryManager) ListBooks() ([]entities.Book, error) {
	books, err := m.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	m.logger.Debug().Int("count", len(books)).Msg("books listed")
	if len(books) == 0 {
		m.reporter.Empty()
		return books, nil
	}

	m.reporter.Books(books)
	return books, nil
}

// SupportsAuthorLookup reports whether the store can find books by author.
func (m *LibraryManager) SupportsAuthorLookup() bool {
	_, ok := m.store.(catalog.AuthorFinder)
	return ok
}

// FindBooksByAuthor reports and returns the books written by author.
// It returns ErrAuthorLookupUnsupported when the store lacks the capability.
func (m *LibraryManager) FindBooksByAuthor(author string) ([]entities.Book, error) {
	finder, ok := m.store.(catalog.AuthorFinder)
	if !ok {
		return nil, ErrAuthorLookupUnsupported
	}

	books, err := finder.FindByAuthor(author)
	if err != nil {
		return nil, fmt.Errorf("failed to find books by %q: %w", author, err)
	}

	m.logger.Debug().Str("author", author).Int("count", len(books)).Msg("books found by author")
	m.reporter.AuthorMatches(author, books)
	return books, nil
}
