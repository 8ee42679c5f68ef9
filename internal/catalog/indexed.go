package catalog

import "github.com/mrlokans/bookshelf/internal/entities"

// IndexedCatalog extends MemoryCatalog with lookup by author.
// Add, Remove and List are the embedded MemoryCatalog's, unchanged.
//
// FindByAuthor is a linear scan. A map from author to titles would be the
// next step if catalogs grew large.
type IndexedCatalog struct {
	*MemoryCatalog
}

// NewIndexedCatalog creates an empty IndexedCatalog.
func NewIndexedCatalog() *IndexedCatalog {
	return &IndexedCatalog{MemoryCatalog: NewMemoryCatalog()}
}

// FindByAuthor returns the books written by author, in catalog order.
// The match is exact and case-sensitive.
func (c *IndexedCatalog) FindByAuthor(author string) ([]entities.Book, error) {
	books, err := c.List()
	if err != nil {
		return nil, err
	}

	matches := make([]entities.Book, 0)
	for _, book := range books {
		if book.Author == author {
			matches = append(matches, book)
		}
	}
	return matches, nil
}
