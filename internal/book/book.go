package book

import "strconv"

// SeedID is returned by the ID generator when the catalog is empty.
// Generated IDs are always greater than the current maximum, so the first
// book added to an empty catalog gets this value.
const SeedID int64 = 3000

// Book is one catalog entry.
type Book struct {
	ID     int64  `yaml:"id"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Qty    int64  `yaml:"qty"`
}

// Candidate holds unvalidated field text as typed by the operator.
type Candidate struct {
	ID     string
	Title  string
	Author string
	Qty    string
}

// Candidate converts b back into raw field text.
// Used by the update workflow, which edits one field at a time and
// re-validates the whole record.
func (b Book) Candidate() Candidate {
	return Candidate{
		ID:     strconv.FormatInt(b.ID, 10),
		Title:  b.Title,
		Author: b.Author,
		Qty:    strconv.FormatInt(b.Qty, 10),
	}
}

// Criteria is a partial search filter. Empty fields do not constrain results.
type Criteria struct {
	ID     string
	Title  string
	Author string
	Qty    string
}

// IsEmpty reports whether no field constrains the search.
func (c Criteria) IsEmpty() bool {
	return c.ID == "" && c.Title == "" && c.Author == "" && c.Qty == ""
}
