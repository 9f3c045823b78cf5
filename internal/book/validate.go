package book

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation messages, printed verbatim by the workflows.
const (
	MsgNotNumbers  = "ID and Quantity must be numbers."
	MsgNotPositive = "ID and Quantity must be positive."
	MsgEmptyText   = "Title and Author cannot be empty."
)

// ValidationError reports the first rule a Candidate failed.
type ValidationError struct {
	Message string
	Err     error // underlying parse or rule error (optional)
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks c and returns the Book it describes.
// Title and Author are returned trimmed.
func (c Candidate) Validate() (Book, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.ID), 10, 64)
	if err != nil {
		return Book{}, &ValidationError{Message: MsgNotNumbers, Err: err}
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(c.Qty), 10, 64)
	if err != nil {
		return Book{}, &ValidationError{Message: MsgNotNumbers, Err: err}
	}

	// Min skips zero values; Required rejects them.
	positive := validation.Errors{
		"id":  validation.Validate(id, validation.Required, validation.Min(int64(1))),
		"qty": validation.Validate(qty, validation.Required, validation.Min(int64(1))),
	}
	if err := positive.Filter(); err != nil {
		return Book{}, &ValidationError{Message: MsgNotPositive, Err: err}
	}

	title := strings.TrimSpace(c.Title)
	author := strings.TrimSpace(c.Author)
	present := validation.Errors{
		"title":  validation.Validate(title, validation.Required),
		"author": validation.Validate(author, validation.Required),
	}
	if err := present.Filter(); err != nil {
		return Book{}, &ValidationError{Message: MsgEmptyText, Err: err}
	}

	return Book{ID: id, Title: title, Author: author, Qty: qty}, nil
}

// Validate reports whether c describes a storable Book.
func Validate(c Candidate) bool {
	_, err := c.Validate()
	return err == nil
}
