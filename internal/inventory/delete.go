package inventory

import (
	"context"
	"errors"

	"github.com/roach88/bookvault/internal/book"
	"github.com/roach88/bookvault/internal/store"
)

// DeleteBook asks for an id and removes that book after confirmation.
func (s *Session) DeleteBook(ctx context.Context) error {
	b, ok, err := s.lookup(ctx, "\nBook ID to delete:\n")
	if err != nil || !ok {
		return err
	}
	_, err = s.ConfirmDelete(ctx, b)
	return err
}

// ConfirmDelete shows b and deletes it only on an explicit yes.
// Reports whether the book was deleted; a refusal changes nothing.
func (s *Session) ConfirmDelete(ctx context.Context, b book.Book) (bool, error) {
	writeSummary(s.p.Out(), "The following book will be deleted:", b, false)

	if !s.p.Ask("\nDelete book from database? (Y/N)\n") {
		s.p.Println("\nOperation cancelled.")
		return false, nil
	}

	if err := s.catalog.Delete(ctx, b.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.p.Printf("\nUnable to locate book with ID: %d\n", b.ID)
			return false, nil
		}
		return false, err
	}

	s.logger.Info("book deleted", "id", b.ID)
	s.p.Println("\nBook successfully deleted!")
	return true, nil
}
