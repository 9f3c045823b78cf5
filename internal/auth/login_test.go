package auth

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bookvault/internal/prompt"
	"github.com/roach88/bookvault/internal/testutil"
)

func testCredentials(t *testing.T) *Credentials {
	t.Helper()
	creds := New("unused")
	require.NoError(t, creds.Add("wian", "123"))
	return creds
}

func TestLogin_Success(t *testing.T) {
	out := &bytes.Buffer{}
	p := prompt.New(testutil.Script("wian", "123"), out)

	assert.True(t, Login(p, testCredentials(t)))
	assert.Contains(t, out.String(), "Welcome Wian!")
}

func TestLogin_RecoversAfterFailures(t *testing.T) {
	out := &bytes.Buffer{}
	p := prompt.New(testutil.Script("ghost", "wian", "bad", "wian", "123"), out)

	assert.True(t, Login(p, testCredentials(t)))
	assert.Contains(t, out.String(), "User ghost is not registered.")
	assert.Contains(t, out.String(), "Retries remaining 3")
	assert.Contains(t, out.String(), "Password incorrect. Try again.")
	assert.Contains(t, out.String(), "Retries remaining 2")
}

func TestLogin_RetryLimit(t *testing.T) {
	out := &bytes.Buffer{}
	// Four failed attempts; the fifth pair must never be read.
	p := prompt.New(testutil.Script("x", "x", "x", "wian", "nope", "wian", "123"), out)

	assert.False(t, Login(p, testCredentials(t)))
	assert.Contains(t, out.String(), "Retries remaining 0")
	assert.Contains(t, out.String(), "Retry limit reached!")
	assert.Equal(t, MaxLoginRetries+1, strings.Count(out.String(), "Username: "))
}

func TestLogin_EndOfInput(t *testing.T) {
	p := prompt.New(testutil.Script("wian"), &bytes.Buffer{})

	assert.False(t, Login(p, testCredentials(t)))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Wian", DisplayName("wian"))
	assert.Equal(t, "Tiaan", DisplayName("TIAAN"))
}
