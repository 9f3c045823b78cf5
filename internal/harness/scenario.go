package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bookvault/internal/book"
)

// Scenario defines a scripted operator session.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Setup adjusts the seeded catalog before the session starts.
	Setup *Setup `yaml:"setup,omitempty"`

	// Input is what the operator types, one answer per line, starting at
	// the main menu. Input running out ends the session like choosing Exit.
	Input []string `yaml:"input"`

	// Assertions validate the transcript and the final catalog.
	Assertions []Assertion `yaml:"assertions"`
}

// Setup describes the catalog a scenario starts from.
type Setup struct {
	// Clear removes the seed books first.
	Clear bool `yaml:"clear,omitempty"`

	// Books are inserted after clearing.
	Books []book.Book `yaml:"books,omitempty"`
}

// Assertion validates the transcript or the final catalog.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Text is the expected substring (output_contains, output_count).
	Text string `yaml:"text,omitempty"`

	// Texts are the substrings expected in order (output_order).
	Texts []string `yaml:"texts,omitempty"`

	// Count is the expected number of occurrences or books.
	Count int `yaml:"count,omitempty"`

	// ID selects a book (book, book_absent).
	ID int64 `yaml:"id,omitempty"`

	// Expect holds field values the book must have (book).
	// Subset match; keys are title, author and qty.
	Expect map[string]interface{} `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains = "output_contains"
	AssertOutputOrder    = "output_order"
	AssertOutputCount    = "output_count"
	AssertBook           = "book"
	AssertBookAbsent     = "book_absent"
	AssertBookCount      = "book_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Input) == 0 {
		return fmt.Errorf("input list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	if s.Setup != nil {
		for i, b := range s.Setup.Books {
			if !book.Validate(b.Candidate()) {
				return fmt.Errorf("setup.books[%d]: book %d is not valid", i, b.ID)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertOutputContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_contains", index)
		}
	case AssertOutputOrder:
		if len(a.Texts) == 0 {
			return fmt.Errorf("assertions[%d]: texts list is required for output_order", index)
		}
	case AssertOutputCount:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for output_count", index)
		}
	case AssertBook:
		if a.ID <= 0 {
			return fmt.Errorf("assertions[%d]: id is required for book", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for book", index)
		}
		for field := range a.Expect {
			if !isBookField(field) {
				return fmt.Errorf("assertions[%d]: unknown book field %q", index, field)
			}
		}
	case AssertBookAbsent:
		if a.ID <= 0 {
			return fmt.Errorf("assertions[%d]: id is required for book_absent", index)
		}
	case AssertBookCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for book_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}

func isBookField(name string) bool {
	switch name {
	case "title", "author", "qty":
		return true
	}
	return false
}
