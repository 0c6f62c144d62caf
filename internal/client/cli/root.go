package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Command builds the cobra command tree. Every subcommand first restores
// the persisted session.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "semant",
		Short:         "Client for the semant collections backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.Restore(cmd.Context())
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.out)

	var token string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Record an auth token and verify it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Login(cmd.Context(), token)
		},
	}
	loginCmd.Flags().StringVar(&token, "token", "", "auth token (prompted without echo when omitted)")

	var userID string
	collectionsCmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"c"},
		Short:   "Fetch and list the current user's collections",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.ListCollections(cmd.Context(), userID)
		},
	}
	collectionsCmd.Flags().StringVar(&userID, "user", "", "select this user id first")

	root.AddCommand(
		loginCmd,
		&cobra.Command{
			Use:   "logout",
			Short: "Sign out and wipe the local session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.Logout(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the current identity",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.WhoAmI(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "users",
			Short: "List all users",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.Users(cmd.Context())
			},
		},
		collectionsCmd,
		&cobra.Command{
			Use:   "create-collection <name>",
			Short: "Create a collection for the current user",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.CreateCollection(cmd.Context(), strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "color <#RRGGBB>...",
			Short: "Pick black or white text for each background color",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.Color(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show API request counts for this process",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.Stats(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a.Repl(cmd.Context())
				return nil
			},
		},
	)
	return root
}

// Repl runs the interactive shell until EOF or "exit".
func (a *App) Repl(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to semant (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader), a.out)
}
