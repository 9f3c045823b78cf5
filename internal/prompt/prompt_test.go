package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bookvault/internal/testutil"
)

func newTestPrompter(lines ...string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(testutil.Script(lines...), out), out
}

func TestConfirm_Immediate(t *testing.T) {
	testCases := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"  y  ", true},
		{"n", false},
		{"N", false},
		{"\tn\n", false},
	}

	for _, tc := range testCases {
		t.Run(tc.answer, func(t *testing.T) {
			p, out := newTestPrompter()
			assert.Equal(t, tc.want, p.Confirm(tc.answer))
			assert.Empty(t, out.String(), "a valid answer must not re-prompt")
		})
	}
}

func TestConfirm_RetryThenAnswer(t *testing.T) {
	p, out := newTestPrompter("maybe", " Y ")

	assert.True(t, p.Confirm("yes"))
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter Y (Yes) or N (No)."))
	assert.NotContains(t, out.String(), ExhaustedWarning)
}

func TestConfirm_LastRetryIsEvaluated(t *testing.T) {
	p, _ := newTestPrompter("a", "b", "y")

	assert.True(t, p.Confirm("x"))
}

func TestConfirm_FourInvalidDefaultsToNo(t *testing.T) {
	// Initial answer plus three retries, all invalid. A fifth line is
	// available but must never be read.
	p, out := newTestPrompter("b", "c", "d", "y")

	assert.False(t, p.Confirm("a"))
	assert.Equal(t, MaxRetries, strings.Count(out.String(), "Please enter Y (Yes) or N (No)."))
	assert.Contains(t, out.String(), ExhaustedWarning)

	next, err := p.Line("")
	require.NoError(t, err)
	assert.Equal(t, "y", next, "confirm consumed more answers than allowed")
}

func TestConfirm_EndOfInputDefaultsToNo(t *testing.T) {
	p, _ := newTestPrompter()

	assert.False(t, p.Confirm("what"))
}

func TestAsk(t *testing.T) {
	p, out := newTestPrompter("Y")

	assert.True(t, p.Ask("Add book to database? (Y/N)\n"))
	assert.Equal(t, "Add book to database? (Y/N)\n", out.String())

	// Input exhausted
	assert.False(t, p.Ask("Again? "))
}

func TestLine(t *testing.T) {
	p := New(strings.NewReader("first\r\nsecond"), &bytes.Buffer{})

	got, err := p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	// Final line without a terminator is still returned.
	got, err = p.Line("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	_, err = p.Line("> ")
	assert.ErrorIs(t, err, io.EOF)
}
