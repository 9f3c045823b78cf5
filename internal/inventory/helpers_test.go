package inventory

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/roach88/bookvault/internal/book"
	"github.com/roach88/bookvault/internal/prompt"
	"github.com/roach88/bookvault/internal/store"
	"github.com/roach88/bookvault/internal/testutil"
)

// newTestSession creates a session over a freshly seeded store, fed by the
// given operator answers.
func newTestSession(t *testing.T, answers ...string) (*Session, *store.Store, *bytes.Buffer) {
	t.Helper()
	st := testutil.OpenStore(t)
	out := &bytes.Buffer{}
	return NewSession(st, prompt.New(testutil.Script(answers...), out), nil), st, out
}

// sessionOver creates a session over an arbitrary catalog.
func sessionOver(c Catalog, answers ...string) (*Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewSession(c, prompt.New(testutil.Script(answers...), out), nil), out
}

func mustFind(t *testing.T, st *store.Store, id int64) book.Book {
	t.Helper()
	b, err := st.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("FindByID(%d) failed: %v", id, err)
	}
	return b
}

func mustCount(t *testing.T, st *store.Store) int {
	t.Helper()
	books, err := st.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() failed: %v", err)
	}
	return len(books)
}

var errDiskOnFire = errors.New("disk on fire")

// faultyCatalog wraps a real catalog and overrides selected behaviour.
type faultyCatalog struct {
	Catalog
	nextID  int64 // returned by NextID when non-zero
	listErr error
	findErr error
}

func (f faultyCatalog) NextID(ctx context.Context) (int64, error) {
	if f.nextID != 0 {
		return f.nextID, nil
	}
	return f.Catalog.NextID(ctx)
}

func (f faultyCatalog) ListAll(ctx context.Context) ([]book.Book, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Catalog.ListAll(ctx)
}

func (f faultyCatalog) FindByID(ctx context.Context, id int64) (book.Book, error) {
	if f.findErr != nil {
		return book.Book{}, f.findErr
	}
	return f.Catalog.FindByID(ctx, id)
}
