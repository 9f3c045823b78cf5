package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_Valid(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/add_book.yaml")
	require.NoError(t, err)

	assert.Equal(t, "add_book", scenario.Name)
	assert.Equal(t, "  Dune ", scenario.Input[1], "input is kept verbatim")
	require.Len(t, scenario.Assertions, 3)
	assert.Equal(t, AssertBook, scenario.Assertions[1].Type)
	assert.Equal(t, int64(3012), scenario.Assertions[1].ID)
	assert.Equal(t, 9, scenario.Assertions[1].Expect["qty"])
}

func TestLoadScenario_Setup(t *testing.T) {
	data := []byte(`
name: setup
description: "setup books"
setup:
  clear: true
  books:
    - { id: 4000, title: "Dune", author: "Frank Herbert", qty: 3 }
input: ["0"]
assertions:
  - type: book_count
    count: 1
`)
	scenario, err := ParseScenario(data)
	require.NoError(t, err)
	require.NotNil(t, scenario.Setup)
	assert.True(t, scenario.Setup.Clear)
	require.Len(t, scenario.Setup.Books, 1)
	assert.Equal(t, int64(4000), scenario.Setup.Books[0].ID)
	assert.Equal(t, "Frank Herbert", scenario.Setup.Books[0].Author)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: typo
description: "typo"
input: ["0"]
assertion:
  - type: book_count
`), 0644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    `{description: d, input: ["0"], assertions: [{type: book_count}]}`,
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    `{name: n, input: ["0"], assertions: [{type: book_count}]}`,
			wantErr: "description is required",
		},
		{
			name:    "missing input",
			yaml:    `{name: n, description: d, assertions: [{type: book_count}]}`,
			wantErr: "input list is required",
		},
		{
			name:    "missing assertions",
			yaml:    `{name: n, description: d, input: ["0"]}`,
			wantErr: "assertions list is required",
		},
		{
			name:    "assertion without type",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{text: x}]}`,
			wantErr: "assertions[0]: type is required",
		},
		{
			name:    "unknown assertion type",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{type: trace_contains}]}`,
			wantErr: `unknown assertion type "trace_contains"`,
		},
		{
			name:    "output_contains without text",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{type: output_contains}]}`,
			wantErr: "text is required for output_contains",
		},
		{
			name:    "output_order without texts",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{type: output_order}]}`,
			wantErr: "texts list is required",
		},
		{
			name:    "negative output_count",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{type: output_count, text: x, count: -1}]}`,
			wantErr: "count must be non-negative",
		},
		{
			name:    "book without id",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{type: book, expect: {title: x}}]}`,
			wantErr: "id is required for book",
		},
		{
			name:    "book without expect",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{type: book, id: 3001}]}`,
			wantErr: "expect is required for book",
		},
		{
			name:    "book with unknown field",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{type: book, id: 3001, expect: {isbn: x}}]}`,
			wantErr: `unknown book field "isbn"`,
		},
		{
			name:    "book_absent without id",
			yaml:    `{name: n, description: d, input: ["0"], assertions: [{type: book_absent}]}`,
			wantErr: "id is required for book_absent",
		},
		{
			name:    "invalid setup book",
			yaml:    `{name: n, description: d, setup: {books: [{id: 1, title: "", author: a, qty: 1}]}, input: ["0"], assertions: [{type: book_count}]}`,
			wantErr: "setup.books[0]: book 1 is not valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
