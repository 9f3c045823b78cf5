package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/bookvault/internal/book"
	"github.com/roach88/bookvault/internal/querysql"
)

// FindByID retrieves a single book.
// Returns ErrNotFound if no book has that id.
func (s *Store) FindByID(ctx context.Context, id int64) (book.Book, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, author, qty
		FROM book
		WHERE id = ?
	`, id)

	var b book.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Qty); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return book.Book{}, fmt.Errorf("find book %d: %w", id, ErrNotFound)
		}
		return book.Book{}, fmt.Errorf("find book %d: %w", id, err)
	}
	return b, nil
}

// ListAll returns every book ordered by id ascending.
// Returns an empty slice (not nil) for an empty catalog.
func (s *Store) ListAll(ctx context.Context) ([]book.Book, error) {
	q, err := querysql.ListAll()
	if err != nil {
		return nil, err
	}
	return s.queryBooks(ctx, q)
}

// Search returns the books matching c, ordered by id ascending, together
// with any warnings about criteria that were skipped.
func (s *Store) Search(ctx context.Context, c book.Criteria) ([]book.Book, []string, error) {
	q, err := querysql.Compile(c)
	if err != nil {
		return nil, nil, err
	}

	books, err := s.queryBooks(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	return books, q.Warnings, nil
}

// NextID returns the id for the next new book: one past the current
// maximum, or book.SeedID when the catalog is empty. Gaps left by deleted
// books are never reused.
func (s *Store) NextID(ctx context.Context) (int64, error) {
	q, err := querysql.MaxID()
	if err != nil {
		return 0, err
	}

	var maxID sql.NullInt64
	if err := s.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	if !maxID.Valid {
		return book.SeedID, nil
	}
	return maxID.Int64 + 1, nil
}

// queryBooks runs a compiled query and scans book rows.
func (s *Store) queryBooks(ctx context.Context, q querysql.Compiled) ([]book.Book, error) {
	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Qty); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	return books, nil
}
