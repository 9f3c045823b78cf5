package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/bookvault/internal/inventory"
	"github.com/roach88/bookvault/internal/prompt"
	"github.com/roach88/bookvault/internal/store"
	"github.com/roach88/bookvault/internal/testutil"
)

// Harness is the scenario execution engine.
// It drives one inventory session over a private store.
type Harness struct {
	store  *store.Store
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against a freshly seeded database in its own temp
// directory, removed afterwards.
//
// Execution flow:
// 1. Create and seed a fresh database
// 2. Apply the setup section
// 3. Feed the input lines to an inventory session
// 4. Capture the transcript and the final catalog
// 5. Evaluate assertions
func Run(scenario *Scenario) (*Result, error) {
	dir, err := os.MkdirTemp("", "bookvault-scenario-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario dir: %w", err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()

	st, err := store.Open(ctx, filepath.Join(dir, "scenario.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}

	if err := h.executeSetup(ctx, scenario.Setup); err != nil {
		return nil, fmt.Errorf("failed to execute setup: %w", err)
	}

	result := NewResult()

	transcript, err := h.executeSession(ctx, scenario.Input)
	result.Transcript = transcript
	if err != nil {
		return nil, fmt.Errorf("failed to execute session: %w", err)
	}

	books, err := st.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read final catalog: %w", err)
	}
	result.Books = books

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(errMsg)
	}

	return result, nil
}

// executeSetup clears the seed books if asked and inserts the setup books.
func (h *Harness) executeSetup(ctx context.Context, setup *Setup) error {
	if setup == nil {
		return nil
	}

	if setup.Clear {
		books, err := h.store.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, b := range books {
			if err := h.store.Delete(ctx, b.ID); err != nil {
				return fmt.Errorf("clear book %d: %w", b.ID, err)
			}
		}
	}

	for i, b := range setup.Books {
		if err := h.store.Insert(ctx, b); err != nil {
			return fmt.Errorf("setup book %d: %w", i, err)
		}
	}

	h.logger.Info("setup applied", "cleared", setup.Clear, "books", len(setup.Books))
	return nil
}

// executeSession runs the main menu with input as the operator's answers.
func (h *Harness) executeSession(ctx context.Context, input []string) (string, error) {
	var out bytes.Buffer
	p := prompt.New(testutil.Script(input...), &out)

	logger := h.logger.With("session", testutil.NewFixedSessionGenerator("").Generate())
	err := inventory.NewSession(h.store, p, logger).Run(ctx)
	return out.String(), err
}
