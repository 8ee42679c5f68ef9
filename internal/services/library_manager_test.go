package services

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type recordingReporter struct {
	events  []string
	listed  [][]entities.Book
	matches map[string][]entities.Book
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{matches: make(map[string][]entities.Book)}
}

func (r *recordingReporter) BookAdded(title string)   { r.events = append(r.events, "added:"+title) }
func (r *recordingReporter) BookRemoved(title string) { r.events = append(r.events, "removed:"+title) }
func (r *recordingReporter) Empty()                   { r.events = append(r.events, "empty") }

func (r *recordingReporter) Books(books []entities.Book) {
	r.events = append(r.events, "books")
	r.listed = append(r.listed, books)
}

func (r *recordingReporter) AuthorMatches(author string, books []entities.Book) {
	r.events = append(r.events, "matches:"+author)
	r.matches[author] = books
}

func setupManager(t *testing.T, backend string) (*LibraryManager, *recordingReporter) {
	t.Helper()
	store, err := catalog.New(backend)
	require.NoError(t, err)
	reporter := newRecordingReporter()
	return NewLibraryManager(store, reporter, zerolog.Nop()), reporter
}

func TestLibraryManager_AddAndList(t *testing.T) {
	m, reporter := setupManager(t, catalog.BackendMemory)

	require.NoError(t, m.AddBook("Dune", "Herbert", "1965"))
	require.NoError(t, m.AddBook("1984", "Orwell", "1949"))

	books, err := m.ListBooks()
	require.NoError(t, err)

	expected := []entities.Book{
		{Title: "Dune", Author: "Herbert", Year: "1965"},
		{Title: "1984", Author: "Orwell", Year: "1949"},
	}
	assert.Equal(t, expected, books)
	assert.Equal(t, []string{"added:Dune", "added:1984", "books"}, reporter.events)
	assert.Equal(t, [][]entities.Book{expected}, reporter.listed)
}

func TestLibraryManager_EmptyCatalog(t *testing.T) {
	m, reporter := setupManager(t, catalog.BackendMemory)

	books, err := m.ListBooks()
	require.NoError(t, err)

	assert.Empty(t, books)
	assert.Equal(t, []string{"empty"}, reporter.events)
	assert.Empty(t, reporter.listed)
}

func TestLibraryManager_RemoveReportsUnconditionally(t *testing.T) {
	m, reporter := setupManager(t, catalog.BackendMemory)
	require.NoError(t, m.AddBook("Dune", "Herbert", "1965"))

	require.NoError(t, m.RemoveBook("Dune"))
	require.NoError(t, m.RemoveBook("Dune"))
	require.NoError(t, m.RemoveBook("Never Added"))

	assert.Equal(t, []string{"added:Dune", "removed:Dune", "removed:Dune", "removed:Never Added"}, reporter.events)

	_, err := m.ListBooks()
	require.NoError(t, err)
	assert.Equal(t, "empty", reporter.events[len(reporter.events)-1])
}

func TestLibraryManager_RemoveDuplicateTitles(t *testing.T) {
	m, _ := setupManager(t, catalog.BackendIndexed)
	require.NoError(t, m.AddBook("Echo", "Alice", "2001"))
	require.NoError(t, m.AddBook("Echo", "Bob", "2002"))

	require.NoError(t, m.RemoveBook("Echo"))

	books, err := m.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestLibraryManager_FindBooksByAuthor(t *testing.T) {
	m, reporter := setupManager(t, catalog.BackendIndexed)
	require.NoError(t, m.AddBook("1984", "Orwell", "1949"))
	require.NoError(t, m.AddBook("Dune", "Herbert", "1965"))
	require.NoError(t, m.AddBook("Animal Farm", "Orwell", "1945"))

	assert.True(t, m.SupportsAuthorLookup())

	books, err := m.FindBooksByAuthor("Orwell")
	require.NoError(t, err)

	expected := []entities.Book{
		{Title: "1984", Author: "Orwell", Year: "1949"},
		{Title: "Animal Farm", Author: "Orwell", Year: "1945"},
	}
	assert.Equal(t, expected, books)
	assert.Equal(t, expected, reporter.matches["Orwell"])
}

func TestLibraryManager_FindBooksByAuthorUnsupported(t *testing.T) {
	m, reporter := setupManager(t, catalog.BackendMemory)

	assert.False(t, m.SupportsAuthorLookup())

	_, err := m.FindBooksByAuthor("Orwell")
	assert.ErrorIs(t, err, ErrAuthorLookupUnsupported)
	assert.Empty(t, reporter.events)
}

type brokenStore struct{}

func (brokenStore) Add(entities.Book) error        { return errors.New("write failed") }
func (brokenStore) Remove(string) error            { return errors.New("write failed") }
func (brokenStore) List() ([]entities.Book, error) { return nil, errors.New("read failed") }

func TestLibraryManager_StoreErrorsAreWrapped(t *testing.T) {
	reporter := newRecordingReporter()
	m := NewLibraryManager(brokenStore{}, reporter, zerolog.Nop())

	err := m.AddBook("Dune", "Herbert", "1965")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dune")

	err = m.RemoveBook("Dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")

	_, err = m.ListBooks()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read failed")

	assert.Empty(t, reporter.events)
}

func TestLibraryManager_ListMatchesAddsMinusRemoves(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := catalog.NewIndexedCatalog()
		m := NewLibraryManager(store, newRecordingReporter(), zerolog.Nop())

		var expected []entities.Book
		steps := rapid.IntRange(0, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			title := rapid.SampledFrom([]string{"Dune", "1984", "Echo", ""}).Draw(t, "title")
			if rapid.Bool().Draw(t, "remove") {
				if err := m.RemoveBook(title); err != nil {
					t.Fatalf("remove: %v", err)
				}
				kept := expected[:0:0]
				for _, b := range expected {
					if b.Title != title {
						kept = append(kept, b)
					}
				}
				expected = kept
				continue
			}

			author := rapid.SampledFrom([]string{"Herbert", "Orwell"}).Draw(t, "author")
			if err := m.AddBook(title, author, "1965"); err != nil {
				t.Fatalf("add: %v", err)
			}
			expected = append(expected, entities.NewBook(title, author, "1965"))
		}

		books, err := m.ListBooks()
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(books) != len(expected) {
			t.Fatalf("expected %d books, got %d", len(expected), len(books))
		}
		for i := range books {
			if books[i] != expected[i] {
				t.Fatalf("book %d: expected %v, got %v", i, expected[i], books[i])
			}
		}
	})
}
