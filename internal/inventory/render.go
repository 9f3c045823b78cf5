package inventory

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/bookvault/internal/book"
)

var separator = strings.Repeat("-", 50)

// writeBooks prints a header followed by one block per book.
func writeBooks(w io.Writer, header string, books []book.Book) {
	fmt.Fprintf(w, "\n==== %s: ====\n", header)
	for _, b := range books {
		fmt.Fprintf(w, "\nID: %d\nTitle: %s\nAuthor: %s\nQuantity: %d\n\n", b.ID, b.Title, b.Author, b.Qty)
		fmt.Fprintln(w, separator)
	}
}

// writeNoBooks prints the empty-result banner and a hint.
func writeNoBooks(w io.Writer, hint string) {
	fmt.Fprintf(w, "\n===X No books found X===\n\n%s\n", hint)
}

// writeSummary prints a book's fields under a heading.
func writeSummary(w io.Writer, heading string, b book.Book, withQty bool) {
	fmt.Fprintf(w, "\n%s\nID: %d\nTitle: %s\nAuthor: %s\n", heading, b.ID, b.Title, b.Author)
	if withQty {
		fmt.Fprintf(w, "Quantity: %d\n", b.Qty)
	}
}
