package auth

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/bookvault/internal/prompt"
)

// MaxLoginRetries is how many failed attempts may follow the first one.
const MaxLoginRetries = prompt.MaxRetries

// Authenticator checks a name/password pair.
type Authenticator interface {
	Authenticate(name, password string) bool
	Has(name string) bool
}

// Login asks for a username and password until they match or the attempts
// run out. An unknown name costs an attempt without asking for a password.
// Returns false when the attempts are exhausted or input ends.
func Login(p *prompt.Prompter, creds Authenticator) bool {
	for attempt := 0; attempt <= MaxLoginRetries; attempt++ {
		remaining := MaxLoginRetries - attempt

		name, err := p.Line("\nUsername: ")
		if err != nil {
			return false
		}

		if !creds.Has(name) {
			p.Printf("\nUser %s is not registered. Please enter a valid username.\n", name)
			p.Printf("Retries remaining %d\n", remaining)
			continue
		}

		password, err := p.Line("Password: ")
		if err != nil {
			return false
		}

		if creds.Authenticate(name, password) {
			p.Printf("\nWelcome %s!\n\n", DisplayName(name))
			return true
		}

		p.Printf("\nPassword incorrect. Try again.\n")
		p.Printf("Retries remaining %d\n", remaining)
	}

	p.Println("\nRetry limit reached!")
	return false
}

// DisplayName title-cases a user name for greetings.
func DisplayName(name string) string {
	return cases.Title(language.Und).String(name)
}
