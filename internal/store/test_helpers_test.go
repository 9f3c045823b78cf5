package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/bookvault/internal/book"
)

// createTestStore creates a new seeded store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createEmptyStore creates a store whose book table exists but holds no rows.
func createEmptyStore(t *testing.T) *Store {
	t.Helper()
	s := createTestStore(t)
	if _, err := s.db.Exec("DELETE FROM book"); err != nil {
		t.Fatalf("clear catalog: %v", err)
	}
	return s
}

// createTestBook creates a valid book with the given id.
func createTestBook(id int64, title, author string, qty int64) book.Book {
	return book.Book{ID: id, Title: title, Author: author, Qty: qty}
}
