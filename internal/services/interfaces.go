package services

import "github.com/mrlokans/bookshelf/internal/entities"

// Reporter receives the user-facing outcome of each LibraryManager
// operation. console.Printer is the terminal implementation.
type Reporter interface {
	BookAdded(title string)
	BookRemoved(title string)
	// Books is called with a non-empty listing.
	Books(books []entities.Book)
	// Empty is called instead of Books when the catalog has no books.
	Empty()
	AuthorMatches(author string, books []entities.Book)
}
