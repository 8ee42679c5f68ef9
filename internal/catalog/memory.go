package catalog

import "github.com/mrlokans/bookshelf/internal/entities"

// MemoryCatalog keeps books in a slice, in the order they were added.
// It is not safe for concurrent use.
type MemoryCatalog struct {
	books []entities.Book
}

// NewMemoryCatalog creates an empty MemoryCatalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

// Add appends book to the catalog.
func (c *MemoryCatalog) Add(book entities.Book) error {
	c.books = append(c.books, book)
	return nil
}

// Remove rebuilds the catalog without any book titled title.
func (c *MemoryCatalog) Remove(title string) error {
	kept := make([]entities.Book, 0, len(c.books))
	for _, book := range c.books {
		if book.Title != title {
			kept = append(kept, book)
		}
	}
	c.books = kept
	return nil
}

// List returns a copy of the books in insertion order.
func (c *MemoryCatalog) List() ([]entities.Book, error) {
	result := make([]entities.Book, len(c.books))
	copy(result, c.books)
	return result, nil
}
