package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/roach88/bookvault/internal/book"
	"github.com/roach88/bookvault/internal/store"
)

// Update menu choices.
const (
	FieldTitle  = "1"
	FieldAuthor = "2"
	FieldQty    = "3"
	FieldCancel = "4"
)

const fieldMenu = `
What would you like to update?
1. Title
2. Author
3. Quantity
4. Cancel

:`

// UpdateBooks asks for an id, runs the field editor on that book, and
// repeats while the operator wants to update more.
func (s *Session) UpdateBooks(ctx context.Context) error {
	for {
		b, ok, err := s.lookup(ctx, "\nBook ID to update:\n")
		if err != nil || !ok {
			return err
		}

		if _, _, err := s.EditBook(ctx, b); err != nil {
			return err
		}

		if !s.p.Ask("\nUpdate another value? (Y/N)\n") {
			return nil
		}
	}
}

// EditBook lets the operator replace one field of b.
//
// After the field is chosen, the new value is validated together with the
// rest of the record. A failure prints the reason and asks for the same
// field again; the first valid record is written and returned. Cancel
// writes nothing and returns ok=false.
func (s *Session) EditBook(ctx context.Context, b book.Book) (updated book.Book, ok bool, err error) {
	writeSummary(s.p.Out(), "Selected book:", b, true)

	field, question, ok, err := s.chooseField()
	if err != nil || !ok {
		return book.Book{}, false, err
	}

	for {
		value, err := s.p.Line(question)
		if err != nil {
			return book.Book{}, false, err
		}

		working := b.Candidate()
		*field(&working) = value

		candidate, verr := working.Validate()
		if verr != nil {
			if !s.reportInvalid(verr) {
				return book.Book{}, false, verr
			}
			continue
		}

		if err := s.catalog.Update(ctx, candidate); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				s.p.Printf("\nUnable to locate book with ID: %d\n", b.ID)
				return book.Book{}, false, nil
			}
			return book.Book{}, false, err
		}

		s.logger.Info("book updated", "id", candidate.ID)
		s.p.Println("\nBook updated successfully!")
		return candidate, true, nil
	}
}

// chooseField shows the field menu until the operator picks a field or
// cancels. It returns an accessor for the chosen candidate field and the
// question that asks for its new value.
func (s *Session) chooseField() (field func(*book.Candidate) *string, question string, ok bool, err error) {
	for {
		choice, err := s.p.Line(fieldMenu)
		if err != nil {
			return nil, "", false, err
		}

		switch strings.TrimSpace(choice) {
		case FieldTitle:
			return func(c *book.Candidate) *string { return &c.Title }, "\nNew title:\n", true, nil
		case FieldAuthor:
			return func(c *book.Candidate) *string { return &c.Author }, "\nNew author:\n", true, nil
		case FieldQty:
			return func(c *book.Candidate) *string { return &c.Qty }, "\nNew quantity:\n", true, nil
		case FieldCancel:
			s.p.Println("\nOperation cancelled.")
			return nil, "", false, nil
		default:
			s.p.Println("\nPlease enter a valid option.")
		}
	}
}
