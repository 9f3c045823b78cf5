package harness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/bookvault/internal/book"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	return buf.String()
}

func assertOutputContains(transcript string, a Assertion) error {
	if strings.Contains(transcript, a.Text) {
		return nil
	}
	return &AssertionError{
		Type:     AssertOutputContains,
		Expected: fmt.Sprintf("output containing %q", a.Text),
		Actual:   "not found",
	}
}

// assertOutputOrder checks the texts appear in order without overlapping.
func assertOutputOrder(transcript string, a Assertion) error {
	rest := transcript
	for i, text := range a.Texts {
		idx := strings.Index(rest, text)
		if idx < 0 {
			return &AssertionError{
				Type:     AssertOutputOrder,
				Expected: fmt.Sprintf("%q in order", a.Texts),
				Actual:   fmt.Sprintf("texts[%d] %q not found after texts[%d]", i, text, i-1),
			}
		}
		rest = rest[idx+len(text):]
	}
	return nil
}

func assertOutputCount(transcript string, a Assertion) error {
	n := strings.Count(transcript, a.Text)
	if n == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertOutputCount,
		Expected: fmt.Sprintf("%q %d times", a.Text, a.Count),
		Actual:   fmt.Sprintf("%d times", n),
	}
}

func assertBook(result *Result, a Assertion) error {
	b, ok := result.Book(a.ID)
	if !ok {
		return &AssertionError{
			Type:     AssertBook,
			Expected: fmt.Sprintf("book %d", a.ID),
			Actual:   "no such book",
		}
	}

	var mismatches []string
	for field, want := range a.Expect {
		got := bookField(b, field)
		if !fieldEqual(want, got) {
			mismatches = append(mismatches, fmt.Sprintf("%s=%v (want %v)", field, got, want))
		}
	}
	if len(mismatches) == 0 {
		return nil
	}

	sort.Strings(mismatches)
	return &AssertionError{
		Type:     AssertBook,
		Expected: fmt.Sprintf("book %d with %v", a.ID, a.Expect),
		Actual:   strings.Join(mismatches, ", "),
	}
}

func assertBookAbsent(result *Result, a Assertion) error {
	if _, ok := result.Book(a.ID); !ok {
		return nil
	}
	return &AssertionError{
		Type:     AssertBookAbsent,
		Expected: fmt.Sprintf("no book %d", a.ID),
		Actual:   "book present",
	}
}

func assertBookCount(result *Result, a Assertion) error {
	if len(result.Books) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertBookCount,
		Expected: fmt.Sprintf("%d books", a.Count),
		Actual:   fmt.Sprintf("%d books", len(result.Books)),
	}
}

func bookField(b book.Book, name string) interface{} {
	switch name {
	case "title":
		return b.Title
	case "author":
		return b.Author
	case "qty":
		return b.Qty
	}
	return nil
}

// fieldEqual compares a YAML-decoded expectation with a book field.
// YAML integers decode as int; book quantities are int64.
func fieldEqual(expected, actual interface{}) bool {
	switch exp := expected.(type) {
	case string:
		s, ok := actual.(string)
		return ok && s == exp
	case int:
		n, ok := actual.(int64)
		return ok && n == int64(exp)
	case int64:
		n, ok := actual.(int64)
		return ok && n == exp
	}
	return false
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertOutputContains:
			err = assertOutputContains(result.Transcript, assertion)
		case AssertOutputOrder:
			err = assertOutputOrder(result.Transcript, assertion)
		case AssertOutputCount:
			err = assertOutputCount(result.Transcript, assertion)
		case AssertBook:
			err = assertBook(result, assertion)
		case AssertBookAbsent:
			err = assertBookAbsent(result, assertion)
		case AssertBookCount:
			err = assertBookCount(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
