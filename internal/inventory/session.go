package inventory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/bookvault/internal/book"
	"github.com/roach88/bookvault/internal/prompt"
)

// Catalog is the store capability the workflows need.
// *store.Store implements it.
type Catalog interface {
	Insert(ctx context.Context, b book.Book) error
	FindByID(ctx context.Context, id int64) (book.Book, error)
	Update(ctx context.Context, b book.Book) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]book.Book, error)
	Search(ctx context.Context, c book.Criteria) ([]book.Book, []string, error)
	NextID(ctx context.Context) (int64, error)
}

// Main menu choices.
const (
	ChoiceExit   = "0"
	ChoiceAdd    = "1"
	ChoiceUpdate = "2"
	ChoiceDelete = "3"
	ChoiceSearch = "4"
	ChoiceList   = "5"
)

const mainMenu = `
=== Main Menu ===

Please choose an option:
1. Add book
2. Update book
3. Delete book
4. Search books
5. List all books
0. Exit

:`

const farewell = `
Thank you for using the Book DB!
Happy reading!

Program exiting...
`

// Session runs the workflows for one logged-in operator.
type Session struct {
	catalog Catalog
	p       *prompt.Prompter
	logger  *slog.Logger
}

// NewSession creates a session over catalog, talking to the operator via p.
// A nil logger discards log output.
func NewSession(catalog Catalog, p *prompt.Prompter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{catalog: catalog, p: p, logger: logger}
}

// Run shows the main menu until the operator chooses Exit or input ends.
// Invalid choices re-prompt without changing anything. A non-nil error means
// a catalog operation failed unexpectedly.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started")
	defer s.logger.Info("session ended")

	for {
		answer, err := s.p.Line(mainMenu)
		if err != nil {
			return endOfInput(err)
		}

		choice := strings.ToLower(strings.TrimSpace(answer))
		if choice == ChoiceExit {
			s.p.Printf("%s", farewell)
			return nil
		}

		if err := s.Dispatch(ctx, choice); err != nil {
			return endOfInput(err)
		}
	}
}

// Dispatch runs the workflow for a single main-menu choice.
func (s *Session) Dispatch(ctx context.Context, choice string) error {
	switch choice {
	case ChoiceAdd:
		return s.AddBooks(ctx)
	case ChoiceUpdate:
		return s.UpdateBooks(ctx)
	case ChoiceDelete:
		return s.DeleteBook(ctx)
	case ChoiceSearch:
		return s.SearchBooks(ctx)
	case ChoiceList:
		return s.ListBooks(ctx)
	default:
		s.p.Println("\nPlease enter a valid option!")
		return nil
	}
}

// endOfInput maps exhausted input to a clean end of session.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
