// Package console renders catalog results and prompts for the terminal.
//
// A Printer writes to the io.Writer it is constructed with. Colors follow
// the terminal detection of fatih/color unless disabled explicitly.
package console

import (
	"io"

	"github.com/fatih/color"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type Printer struct {
	out     io.Writer
	colored bool

	success *color.Color
	removed *color.Color
	header  *color.Color
	row     *color.Color
	empty   *color.Color
	prompt  *color.Color
	field   *color.Color
}

// NewPrinter creates a Printer writing to out. When colored is false every
// message is written as plain text.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out:     out,
		colored: colored,
		success: color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		header:  color.New(color.FgYellow),
		row:     color.New(color.FgCyan),
		empty:   color.New(color.FgMagenta),
		prompt:  color.New(color.FgBlue),
		field:   color.New(color.FgCyan),
	}
	if !colored {
		for _, c := range []*color.Color{p.success, p.removed, p.header, p.row, p.empty, p.prompt, p.field} {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) BookAdded(title string) {
	p.success.Fprintf(p.out, "Book \"%s\" added successfully.\n", title)
}

func (p *Printer) BookRemoved(title string) {
	p.removed.Fprintf(p.out, "Book \"%s\" removed successfully.\n", title)
}

func (p *Printer) Books(books []entities.Book) {
	p.header.Fprintln(p.out, "Books in the library:")
	p.rows(books)
}

func (p *Printer) Empty() {
	p.empty.Fprintln(p.out, "The library is empty.")
}

func (p *Printer) AuthorMatches(author string, books []entities.Book) {
	if len(books) == 0 {
		p.empty.Fprintf(p.out, "No books by %s found.\n", author)
		return
	}
	p.header.Fprintf(p.out, "Books by %s:\n", author)
	p.rows(books)
}

func (p *Printer) rows(books []entities.Book) {
	for _, book := range books {
		p.row.Fprintln(p.out, book.String())
	}
}

// Prompt writes a command prompt without a trailing newline.
func (p *Printer) Prompt(text string) {
	p.prompt.Fprint(p.out, text)
}

// FieldPrompt writes a prompt for one field of a command.
func (p *Printer) FieldPrompt(text string) {
	p.field.Fprint(p.out, text)
}

func (p *Printer) InvalidCommand() {
	p.header.Fprintln(p.out, "Invalid command. Please try again.")
}

func (p *Printer) Goodbye() {
	p.removed.Fprintln(p.out, "Exiting program...")
}

// Line writes text in the given attribute. Used for output that is not
// catalog related, such as the vehicle demo.
func (p *Printer) Line(attr color.Attribute, text string) {
	c := color.New(attr)
	if !p.colored {
		c.DisableColor()
	}
	c.Fprintln(p.out, text)
}
