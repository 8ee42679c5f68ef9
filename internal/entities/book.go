package entities

import "fmt"

// Book is a single catalog entry. Title is the logical key; Year is kept as
// an opaque string and never parsed.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
}

func NewBook(title, author, year string) Book {
	return Book{Title: title, Author: author, Year: year}
}

func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Year: %s", b.Title, b.Author, b.Year)
}
