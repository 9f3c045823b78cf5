package harness

import "github.com/roach88/bookvault/internal/book"

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Transcript is everything the session wrote to the terminal.
	Transcript string `json:"transcript"`

	// Books is the catalog after the session ended, by ascending id.
	Books []book.Book `json:"books"`

	// Errors holds one message per failed assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Books:  []book.Book{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Book returns the final record with id, if any.
func (r *Result) Book(id int64) (book.Book, bool) {
	for _, b := range r.Books {
		if b.ID == id {
			return b, true
		}
	}
	return book.Book{}, false
}
