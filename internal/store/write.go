package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/bookvault/internal/book"
)

// Insert writes a new book. The record must already be validated.
//
// Unlike an upsert, a colliding id is an error: ErrDuplicateID is returned
// and the existing row is left untouched.
func (s *Store) Insert(ctx context.Context, b book.Book) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO book (id, title, author, qty)
		VALUES (?, ?, ?, ?)
	`, b.ID, b.Title, b.Author, b.Qty)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert book %d: %w", b.ID, ErrDuplicateID)
		}
		return fmt.Errorf("insert book %d: %w", b.ID, err)
	}

	slog.Debug("book inserted", "id", b.ID)
	return nil
}

// Update replaces title, author and qty of the book with b.ID.
// The id itself is the match key and is never written.
// Returns ErrNotFound if no book has that id.
func (s *Store) Update(ctx context.Context, b book.Book) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE book
		SET title = ?, author = ?, qty = ?
		WHERE id = ?
	`, b.Title, b.Author, b.Qty, b.ID)
	if err != nil {
		return fmt.Errorf("update book %d: %w", b.ID, err)
	}

	if err := requireOneRow(result.RowsAffected()); err != nil {
		return fmt.Errorf("update book %d: %w", b.ID, err)
	}

	slog.Debug("book updated", "id", b.ID)
	return nil
}

// Delete removes the book with the given id.
// Returns ErrNotFound (and changes nothing) if no book has that id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM book WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}

	if err := requireOneRow(result.RowsAffected()); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}

	slog.Debug("book deleted", "id", id)
	return nil
}

// requireOneRow maps a zero rows-affected count to ErrNotFound.
func requireOneRow(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
