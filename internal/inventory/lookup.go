package inventory

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/roach88/bookvault/internal/book"
	"github.com/roach88/bookvault/internal/store"
)

const findHint = `Use Option 5 to list or Option 4 to search for the book and
find its appropriate ID.`

// lookup asks for a book id until one is found or the operator gives up.
// Returns ok=false when the operator declines to try again.
func (s *Session) lookup(ctx context.Context, question string) (book.Book, bool, error) {
	for {
		raw, err := s.p.Line(question)
		if err != nil {
			return book.Book{}, false, err
		}

		id, perr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if perr != nil {
			s.p.Printf("\nPlease insert a valid ID that only consists of numbers.\n%s\n", findHint)
		} else {
			b, err := s.catalog.FindByID(ctx, id)
			switch {
			case err == nil:
				return b, true, nil
			case errors.Is(err, store.ErrNotFound):
				s.p.Printf("\nUnable to locate book with ID: %d\n%s\n", id, findHint)
			default:
				return book.Book{}, false, err
			}
		}

		if !s.p.Ask("\nTry again? Y/N\n") {
			return book.Book{}, false, nil
		}
	}
}
