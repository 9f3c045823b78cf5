package testutil

// FixedSessionGenerator generates the same session token every time.
//
// Session tokens tag every log line of an interactive session. A fixed token
// keeps captured logs byte-identical between runs.
type FixedSessionGenerator struct {
	token string
}

// NewFixedSessionGenerator creates a new fixed session token generator.
//
// If token is empty, Generate() returns "test-session-default".
func NewFixedSessionGenerator(token string) *FixedSessionGenerator {
	if token == "" {
		token = "test-session-default"
	}
	return &FixedSessionGenerator{token: token}
}

// Generate returns the fixed session token.
//
// Implements inventory.SessionTokenGenerator.
func (g *FixedSessionGenerator) Generate() string {
	return g.token
}
