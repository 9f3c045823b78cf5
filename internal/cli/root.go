package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/bookvault/internal/config"
	"github.com/roach88/bookvault/internal/inventory"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string
	EnvFile    string
	Database   string
	UsersFile  string

	// SessionGenerator allows overriding the session token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	SessionGenerator inventory.SessionTokenGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the BookVault CLI.
// Run without a subcommand it starts the interactive catalog session.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookvault",
		Short: "BookVault - bookstore inventory manager",
		Long: `An interactive inventory manager for a small bookstore catalog.

Log in with a registered user, then add, update, delete, search and list
books from the numbered main menu. The catalog lives in a local SQLite file
that is created and seeded with starter books on first run.

Example:
  bookvault
  bookvault --db ./shop.db --users ./users.txt -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format for non-interactive commands (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", config.DefaultEnvFile, "path to .env file (ignored if missing)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (default "+config.DefaultDatabase+")")
	cmd.PersistentFlags().StringVar(&opts.UsersFile, "users", "", "path to users file (default "+config.DefaultUsersFile+")")

	// Add subcommands
	cmd.AddCommand(NewUsersCommand(opts))

	return cmd
}

// resolveConfig merges config file, environment and flags.
func resolveConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigFile, opts.EnvFile)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}
	if opts.UsersFile != "" {
		cfg.UsersFile = opts.UsersFile
	}
	return cfg, nil
}

// setupLogging installs the default slog handler. Logs go to w so they never
// interleave with prompts on stdout; without --verbose only warnings show.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
