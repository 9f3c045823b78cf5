package inventory

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/roach88/bookvault/internal/book"
	"github.com/roach88/bookvault/internal/store"
)

// AddBooks asks for new books until the operator declines to add another.
//
// The id is generated, never typed. Each book is validated and then shown
// for confirmation before it is written. Declining the confirmation ends the
// workflow. An id collision fails that add without touching the catalog.
func (s *Session) AddBooks(ctx context.Context) error {
	for {
		id, err := s.catalog.NextID(ctx)
		if err != nil {
			return err
		}

		cand, err := s.readNewBook(id)
		if err != nil {
			return err
		}

		b, err := cand.Validate()
		if err != nil {
			if !s.reportInvalid(err) {
				return err
			}
			if s.p.Ask("\nTry again? Y/N\n") {
				continue
			}
			return nil
		}

		writeSummary(s.p.Out(), "Confirm details:\n", b, true)
		if !s.p.Ask("\nAdd book to database? (Y/N)\n") {
			s.p.Println("\nOperation cancelled.")
			return nil
		}

		if err := s.catalog.Insert(ctx, b); err != nil {
			if errors.Is(err, store.ErrDuplicateID) {
				s.logger.Error("add failed", "id", b.ID, "error", err)
				s.p.Printf("\nCould not add book: %v\n", err)
				return nil
			}
			return err
		}
		s.logger.Info("book added", "id", b.ID)
		s.p.Println("\nBook added successfully!")

		if !s.p.Ask("\nAdd another book? (Y/N)\n") {
			return nil
		}
	}
}

func (s *Session) readNewBook(id int64) (book.Candidate, error) {
	title, err := s.p.Line("\nEnter the new book's title:\n")
	if err != nil {
		return book.Candidate{}, err
	}
	author, err := s.p.Line("\nEnter the new book's author:\n")
	if err != nil {
		return book.Candidate{}, err
	}
	qty, err := s.p.Line("\nEnter the quantity:\n")
	if err != nil {
		return book.Candidate{}, err
	}

	return book.Candidate{
		ID:     strconv.FormatInt(id, 10),
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Qty:    strings.TrimSpace(qty),
	}, nil
}

// reportInvalid prints a validation failure. Returns false if err is not a
// validation error.
func (s *Session) reportInvalid(err error) bool {
	var verr *book.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	s.p.Printf("\n%s\n", verr.Message)
	return true
}
