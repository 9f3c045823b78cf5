package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/bookvault/internal/auth"
	"github.com/roach88/bookvault/internal/inventory"
	"github.com/roach88/bookvault/internal/prompt"
	"github.com/roach88/bookvault/internal/store"
)

const welcomeBanner = `
-------------------------
Welcome to the Book DB!
-------------------------

Please log in:
`

// runSession opens the catalog, gates on login and runs the main menu.
// The store is closed on every return path.
func runSession(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	slog.Info("opening database", "path", cfg.Database)
	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	if st.Created() {
		p.Println("Table does not exist. Creating table with default values...")
		p.Println("Table created.")
	} else {
		p.Println("Table already exists. Continuing.")
	}

	p.Printf("%s", welcomeBanner)

	creds, err := auth.Load(cfg.UsersFile)
	if err != nil {
		if errors.Is(err, auth.ErrNoUsers) {
			p.Printf("\nPlease make sure the users file %s exists and lists at least one user.\n", cfg.UsersFile)
		}
		return WrapExitError(ExitFailure, "cannot log in", err)
	}
	if creds.Len() == 0 {
		p.Printf("\nPlease make sure the users file %s exists and lists at least one user.\n", cfg.UsersFile)
		return WrapExitError(ExitFailure, "cannot log in", auth.ErrNoUsers)
	}

	if !auth.Login(p, creds) {
		p.Println("\nInvalid login. Program exiting...")
		return NewExitError(ExitFailure, "login failed")
	}

	gen := opts.SessionGenerator
	if gen == nil {
		gen = inventory.UUIDv7Generator{}
	}
	logger := slog.Default().With("session", gen.Generate())

	if err := inventory.NewSession(st, p, logger).Run(ctx); err != nil {
		return WrapExitError(ExitFailure, "session aborted", err)
	}
	return nil
}
