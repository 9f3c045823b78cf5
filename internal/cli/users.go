package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bookvault/internal/auth"
	"github.com/roach88/bookvault/internal/prompt"
)

// NewUsersCommand creates the users command group for managing operators.
func NewUsersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage registered operators",
		Long: `List, add and remove the operators allowed to log in.

Operators are stored in the users file, one "name, password" pair per line.

Example:
  bookvault users list
  bookvault users add alice
  bookvault users remove alice --users ./users.txt`,
	}

	cmd.AddCommand(newUsersListCommand(rootOpts))
	cmd.AddCommand(newUsersAddCommand(rootOpts))
	cmd.AddCommand(newUsersRemoveCommand(rootOpts))

	return cmd
}

func newUsersListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List registered operators",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

			creds, err := loadUsers(opts)
			if err != nil {
				if errors.Is(err, auth.ErrNoUsers) {
					_ = out.Error(CodeNoUsers, "No users registered.")
				}
				return WrapExitError(ExitFailure, "cannot list users", err)
			}

			names := creds.Users()
			line := strings.Repeat("-", 50)
			var text strings.Builder
			text.WriteString(line + "\n")
			for _, name := range names {
				fmt.Fprintf(&text, "User: %s\n%s\n", name, line)
			}
			return out.Success(map[string]any{"users": names}, text.String())
		},
	}
}

func newUsersAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "add <name>",
		Short:         "Register a new operator",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

			creds, err := loadUsers(opts)
			if errors.Is(err, auth.ErrNoUsers) {
				creds, err = newUsers(opts)
			}
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot load users", err)
			}

			if err := auth.ValidateName(name); err != nil {
				_ = out.Error(CodeInvalidName, "User names cannot be blank or contain \", \".")
				return WrapExitError(ExitFailure, "cannot add user", err)
			}

			if creds.Has(name) {
				_ = out.Error(CodeUserExists, "User already exists.")
				return WrapExitError(ExitFailure, "cannot add user", auth.ErrUserExists)
			}

			password, err := p.Line("\nPlease enter the new users password\n")
			if err != nil {
				return WrapExitError(ExitFailure, "no password given", err)
			}

			if !p.Ask("\nConfirm? (Y/N)\n") {
				p.Println("\nOperation cancelled!")
				return nil
			}

			if err := creds.Add(name, password); err != nil {
				return WrapExitError(ExitFailure, "cannot add user", err)
			}
			if err := creds.Save(); err != nil {
				return WrapExitError(ExitCommandError, "cannot save users", err)
			}
			return out.Success(map[string]any{"added": name}, "\nUser added successfully!\n")
		},
	}
}

func newUsersRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <name>",
		Short:         "Unregister an operator",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

			creds, err := loadUsers(opts)
			if err != nil && !errors.Is(err, auth.ErrNoUsers) {
				return WrapExitError(ExitCommandError, "cannot load users", err)
			}

			if creds == nil || !creds.Has(name) {
				_ = out.Error(CodeUnknownUser, "User not found!")
				return WrapExitError(ExitFailure, "cannot remove user", auth.ErrUnknownUser)
			}

			if !p.Ask(fmt.Sprintf("\nConfirm deletion of user: %s? (Y/N)\n", name)) {
				p.Println("\nOperation cancelled!")
				return nil
			}

			if err := creds.Remove(name); err != nil {
				return WrapExitError(ExitFailure, "cannot remove user", err)
			}
			if err := creds.Save(); err != nil {
				return WrapExitError(ExitCommandError, "cannot save users", err)
			}
			return out.Success(map[string]any{"removed": name}, "\nUser successfully deleted.\n")
		},
	}
}

// loadUsers reads the configured users file.
func loadUsers(opts *RootOptions) (*auth.Credentials, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	return auth.Load(cfg.UsersFile)
}

// newUsers returns an empty credential list for the configured users file.
func newUsers(opts *RootOptions) (*auth.Credentials, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	return auth.New(cfg.UsersFile), nil
}
