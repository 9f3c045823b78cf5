package testutil

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roach88/bookvault/internal/store"
)

// Script returns a reader that yields each line followed by a newline,
// standing in for an operator typing answers at the terminal.
//
//	in := testutil.Script("2", "3004", "1", "The Hobbit")
func Script(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// OpenStore opens a freshly seeded store in a temp directory.
// The store is closed when the test finishes.
func OpenStore(t testing.TB) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookvault.db")
	st, err := store.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}
