// Package harness runs scripted operator sessions against a fresh catalog.
//
// A scenario lists the lines an operator types at the main menu and the
// checks to make once the session ends. Each run gets its own seeded SQLite
// database in a temp directory, so scenarios never see each other's writes.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: add_book
//	description: "Adding a book assigns the next id"
//	setup:
//	  clear: false
//	  books:
//	    - { id: 4000, title: "Dune", author: "Frank Herbert", qty: 3 }
//	input:
//	  - "1"
//	  - "Neuromancer"
//	  - "William Gibson"
//	  - "4"
//	  - "y"
//	  - "n"
//	  - "0"
//	assertions:
//	  - type: output_contains
//	    text: "Book added successfully!"
//	  - type: book
//	    id: 4001
//	    expect: { title: "Neuromancer", qty: 4 }
//
// # Assertion Types
//
//   - output_contains: the transcript contains text
//   - output_order: the texts appear in the transcript in order
//   - output_count: text appears exactly count times
//   - book: the book with id exists and its fields match expect
//   - book_absent: no book has id
//   - book_count: the catalog holds exactly count books
//
// # Golden Transcripts
//
// RunWithGolden compares the full transcript with
// testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
