package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bookvault/internal/querysql"
)

func TestSearchBooks_Tolkien(t *testing.T) {
	s, _, out := newTestSession(t, "", "", "Tolkien", "", "n")

	require.NoError(t, s.SearchBooks(context.Background()))

	assert.Contains(t, out.String(), "====== SEARCH =====")
	assert.Contains(t, out.String(), "==== Results: ====")
	assert.Contains(t, out.String(), "ID: 3004\nTitle: The Lord of the Rings\nAuthor: J.R.R. Tolkien\nQuantity: 37\n")
	assert.Equal(t, 1, countOf(out.String(), "\nID: 30"), "exactly one result block")
}

func TestSearchBooks_NoMatchThenAgain(t *testing.T) {
	s, _, out := newTestSession(t,
		"", "Necronomicon", "", "", "y",
		"3009", "", "", "", "n",
	)

	require.NoError(t, s.SearchBooks(context.Background()))

	assert.Contains(t, out.String(), "===X No books found X===")
	assert.Contains(t, out.String(), "Verify search details.")
	assert.Contains(t, out.String(), "Title: 1984")
}

func TestSearchBooks_InvalidQuantitySkipped(t *testing.T) {
	s, _, out := newTestSession(t, "", "", "Orwell", "many", "n")

	require.NoError(t, s.SearchBooks(context.Background()))

	assert.Contains(t, out.String(), querysql.WarnInvalidQty)
	assert.Contains(t, out.String(), "Author: George Orwell")
}

func TestSearchBooks_InvalidIDMatchesNothing(t *testing.T) {
	s, _, out := newTestSession(t, "abc", "", "", "", "n")

	require.NoError(t, s.SearchBooks(context.Background()))

	assert.Contains(t, out.String(), querysql.WarnInvalidID)
	assert.Contains(t, out.String(), "===X No books found X===")
	assert.Equal(t, 0, countOf(out.String(), "\nID: 30"))
}

func TestListBooks(t *testing.T) {
	s, _, out := newTestSession(t)

	require.NoError(t, s.ListBooks(context.Background()))

	assert.Contains(t, out.String(), "==== All books: ====")
	assert.Equal(t, 11, countOf(out.String(), "\nID: "))
	assert.Less(t, indexOf(out.String(), "ID: 3001"), indexOf(out.String(), "ID: 3011"))
}

func TestListBooks_Empty(t *testing.T) {
	ctx := context.Background()
	s, st, out := newTestSession(t)
	books, err := st.ListAll(ctx)
	require.NoError(t, err)
	for _, b := range books {
		require.NoError(t, st.Delete(ctx, b.ID))
	}

	require.NoError(t, s.ListBooks(ctx))

	assert.Contains(t, out.String(), "===X No books found X===")
	assert.Contains(t, out.String(), "Add a book using option 1.")
}
