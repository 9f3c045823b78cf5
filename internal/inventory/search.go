package inventory

import (
	"context"

	"github.com/roach88/bookvault/internal/book"
)

const searchBanner = `
====== SEARCH =====
Please enter the following details of the book.
Blank and partial values are accepted.`

// SearchBooks reads criteria, prints the matches, and repeats while the
// operator wants to search again.
func (s *Session) SearchBooks(ctx context.Context) error {
	s.p.Println(searchBanner)

	for {
		c, err := s.readCriteria()
		if err != nil {
			return err
		}

		books, warnings, err := s.catalog.Search(ctx, c)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			s.p.Println(w)
		}

		if len(books) == 0 {
			writeNoBooks(s.p.Out(), "Verify search details.")
		} else {
			writeBooks(s.p.Out(), "Results", books)
		}
		s.logger.Debug("search", "matches", len(books), "skipped", len(warnings))

		if !s.p.Ask("\nSearch again? Y/N\n") {
			return nil
		}
	}
}

func (s *Session) readCriteria() (book.Criteria, error) {
	var c book.Criteria
	fields := []struct {
		label string
		dst   *string
	}{
		{"\nID: ", &c.ID},
		{"Title: ", &c.Title},
		{"Author: ", &c.Author},
		{"Quantity: ", &c.Qty},
	}

	for _, f := range fields {
		v, err := s.p.Line(f.label)
		if err != nil {
			return book.Criteria{}, err
		}
		*f.dst = v
	}
	return c, nil
}

// ListBooks prints the whole catalog by ascending id.
func (s *Session) ListBooks(ctx context.Context) error {
	books, err := s.catalog.ListAll(ctx)
	if err != nil {
		return err
	}

	if len(books) == 0 {
		writeNoBooks(s.p.Out(), "Add a book using option 1.")
		return nil
	}
	writeBooks(s.p.Out(), "All books", books)
	return nil
}
