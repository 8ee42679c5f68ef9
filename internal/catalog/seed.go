package catalog

import "github.com/mrlokans/bookshelf/internal/entities"

// SeedData returns example books to pre-populate a catalog.
func SeedData() []entities.Book {
	return []entities.Book{
		{
			Title:  "Dune",
			Author: "Frank Herbert",
			Year:   "1965",
		},
		{
			Title:  "1984",
			Author: "George Orwell",
			Year:   "1949",
		},
		{
			Title:  "Animal Farm",
			Author: "George Orwell",
			Year:   "1945",
		},
		{
			Title:  "The Go Programming Language",
			Author: "Alan A. A. Donovan",
			Year:   "2015",
		},
	}
}
