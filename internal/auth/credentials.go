// Package auth holds the operator credential list and the login gate.
//
// Credentials are stored in plain text, one "name, password" pair per line.
// This is a gate against accidental use, not access control.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

var (
	// ErrNoUsers is returned when the users file is missing or lists nobody.
	ErrNoUsers = errors.New("no registered users")

	// ErrUserExists is returned when adding a name that is already registered.
	ErrUserExists = errors.New("user already exists")

	// ErrUnknownUser is returned when removing a name that is not registered.
	ErrUnknownUser = errors.New("user not found")

	// ErrInvalidName is returned for names the users file cannot hold.
	ErrInvalidName = errors.New("invalid user name")
)

const fieldSep = ", "

// Credentials maps user names to passwords and remembers the file they came
// from so changes can be saved back.
type Credentials struct {
	path  string
	users map[string]string
}

// Load reads a users file.
// A missing file yields ErrNoUsers. Blank lines are ignored; a line without
// the ", " separator is an error.
func Load(path string) (*Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load users %s: %w", path, ErrNoUsers)
		}
		return nil, fmt.Errorf("load users %s: %w", path, err)
	}
	defer f.Close()

	c := &Credentials{path: path, users: make(map[string]string)}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, password, ok := strings.Cut(line, fieldSep)
		if !ok {
			return nil, fmt.Errorf("load users %s: line %d: expected \"name, password\"", path, lineNo)
		}
		c.users[name] = strings.TrimSpace(password)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load users %s: %w", path, err)
	}

	return c, nil
}

// New returns an empty credential list that saves to path.
func New(path string) *Credentials {
	return &Credentials{path: path, users: make(map[string]string)}
}

// Path returns the file the credentials are saved to.
func (c *Credentials) Path() string {
	return c.path
}

// Len returns the number of registered users.
func (c *Credentials) Len() int {
	return len(c.users)
}

// Has reports whether name is registered.
func (c *Credentials) Has(name string) bool {
	_, ok := c.users[name]
	return ok
}

// Authenticate reports whether name is registered with exactly password.
func (c *Credentials) Authenticate(name, password string) bool {
	stored, ok := c.users[name]
	return ok && stored == password
}

// Users returns the registered names in sorted order.
func (c *Credentials) Users() []string {
	names := make([]string, 0, len(c.users))
	for name := range c.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add registers a new user. It does not save.
// The password is stored trimmed, the same way Load reads it back.
func (c *Credentials) Add(name, password string) error {
	if err := ValidateName(name); err != nil {
		return fmt.Errorf("add user %q: %w", name, err)
	}
	if c.Has(name) {
		return fmt.Errorf("add user %q: %w", name, ErrUserExists)
	}
	c.users[name] = strings.TrimSpace(password)
	return nil
}

// ValidateName reports whether name can be written to a users file and
// read back unchanged.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" ||
		strings.Contains(name, fieldSep) ||
		strings.ContainsAny(name, "\r\n") {
		return ErrInvalidName
	}
	return nil
}

// Remove unregisters a user. It does not save.
func (c *Credentials) Remove(name string) error {
	if !c.Has(name) {
		return fmt.Errorf("remove user %q: %w", name, ErrUnknownUser)
	}
	delete(c.users, name)
	return nil
}

// Save writes the credentials back to their file, sorted by name.
func (c *Credentials) Save() error {
	var b strings.Builder
	for _, name := range c.Users() {
		b.WriteString(name)
		b.WriteString(fieldSep)
		b.WriteString(c.users[name])
		b.WriteByte('\n')
	}
	if err := os.WriteFile(c.path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("save users %s: %w", c.path, err)
	}
	return nil
}
